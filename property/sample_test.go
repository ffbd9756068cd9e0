package property_test

import (
	"testing"

	"github.com/delaneyj/frp/atom"
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/emitter"
	"github.com/delaneyj/frp/observable"
	"github.com/delaneyj/frp/property"
	"github.com/stretchr/testify/assert"
)

type boxed[V any] struct{ v V }

func TestSampleReadsAtMapTime(t *testing.T) {
	cell := atom.New(clock.NewEnv(), 1)
	var p property.Property[int] = cell

	t.Run("slice", func(t *testing.T) {
		occurrences := []string{"a", "b"}
		cell.Set(5)
		sampled := property.Sample(property.SliceFunctor[string, int](), p, occurrences)
		assert.Equal(t, []int{5, 5}, sampled)
	})

	t.Run("keyed", func(t *testing.T) {
		occurrences := map[string]struct{}{"x": {}}
		cell.Set(6)
		sampled := property.Sample(property.MapFunctor[string, struct{}, int](), p, occurrences)
		assert.Equal(t, map[string]int{"x": 6}, sampled)
	})

	t.Run("io maps on invocation", func(t *testing.T) {
		occurrence := property.IO[string](func() string { return "tick" })
		sampled := property.Sample(property.IOFunctor[string, int](), p, occurrence)
		cell.Set(7)
		assert.Equal(t, 7, sampled())
		cell.Set(8)
		assert.Equal(t, 8, sampled())
	})

	t.Run("observable maps on push", func(t *testing.T) {
		clicks := emitter.New[string]()
		sampled := property.Sample(property.ObservableFunctor[string, int](), p, observable.Observable[string](clicks))

		var got []int
		sub := sampled.Subscribe(observable.ObserverFunc[int](func(v int) {
			got = append(got, v)
		}))
		cell.Set(3)
		clicks.Next("click")
		cell.Set(4)
		clicks.Next("click")
		sub.Unsubscribe()

		assert.Equal(t, []int{3, 4}, got)
		assert.Equal(t, 0, clicks.Len())
	})

	t.Run("custom carrier", func(t *testing.T) {
		box := property.FunctorFunc[boxed[string], boxed[int], string, int](func(b boxed[string], f func(string) int) boxed[int] {
			return boxed[int]{v: f(b.v)}
		})
		cell.Set(9)
		assert.Equal(t, boxed[int]{v: 9}, property.Sample[boxed[string], boxed[int], string, int](box, p, boxed[string]{v: "s"}))
	})
}

func TestSampleIODefersRead(t *testing.T) {
	cell := atom.New(clock.NewEnv(), 1)
	var p property.Property[int] = cell

	reads := property.SampleIO(property.SliceFunctor[string, property.IO[int]](), p, []string{"a"})
	cell.Set(9)
	assert.Len(t, reads, 1)
	assert.Equal(t, 9, reads[0]())

	deferred := property.SampleIO(property.IOFunctor[string, property.IO[int]](), p, property.IO[string](func() string { return "" }))
	cell.Set(10)
	assert.Equal(t, 10, deferred()())
}
