package property_test

import (
	"strconv"
	"testing"

	"github.com/delaneyj/frp/atom"
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/property"
	"github.com/stretchr/testify/assert"
)

func sum(values ...int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestSequence(t *testing.T) {
	env := clock.NewEnv()
	a := atom.New(env, 1)
	b := atom.New(env, 2)
	seq := property.Sequence([]property.Property[int]{a, b, property.Of(3)})

	assert.Equal(t, []int{1, 2, 3}, seq.Get())

	notified := 0
	sub := seq.Subscribe(counter(&notified))
	a.Set(10)
	b.Set(20)
	assert.Equal(t, 2, notified)
	assert.Equal(t, []int{10, 20, 3}, seq.Get())

	sub.Unsubscribe()
	assert.Equal(t, 0, a.Observers())
	assert.Equal(t, 0, b.Observers())
}

func TestSequenceEmpty(t *testing.T) {
	seq := property.Sequence[int](nil)
	assert.Empty(t, seq.Get())
	seq.Subscribe(counter(new(int))).Unsubscribe()
}

func TestSequenceS(t *testing.T) {
	env := clock.NewEnv()
	width := atom.New(env, 3)
	height := atom.New(env, 4)
	rec := property.SequenceS(map[string]property.Property[int]{
		"width":  width,
		"height": height,
	})

	assert.Equal(t, map[string]int{"width": 3, "height": 4}, rec.Get())

	notified := 0
	sub := rec.Subscribe(counter(&notified))
	height.Set(5)
	assert.Equal(t, 1, notified)
	assert.Equal(t, map[string]int{"width": 3, "height": 5}, rec.Get())

	sub.Unsubscribe()
	assert.Equal(t, 0, width.Observers())
	assert.Equal(t, 0, height.Observers())
}

func TestCombine(t *testing.T) {
	t.Run("constants", func(t *testing.T) {
		assert.Equal(t, 3, property.Combine(sum, property.Of(1), property.Of(2)).Get())
		assert.Equal(t, 3, property.Combine2(property.Of(1), property.Of(2), func(a, b int) int {
			return a + b
		}).Get())
	})

	t.Run("follows sources", func(t *testing.T) {
		env := clock.NewEnv()
		a := atom.New(env, 1)
		b := atom.New(env, 2)
		total := property.Combine(sum, property.Property[int](a), property.Property[int](b))

		notified := 0
		total.Subscribe(counter(&notified))
		a.Set(5)
		assert.Equal(t, 7, total.Get())
		assert.Equal(t, 1, notified)
	})
}

func TestCombineRecomputesOnEveryRead(t *testing.T) {
	a := atom.New(clock.NewEnv(), 1)
	calls := 0
	total := property.Combine(func(values ...int) int {
		calls++
		return sum(values...)
	}, property.Property[int](a), property.Of(2))

	assert.Equal(t, 3, total.Get())
	assert.Equal(t, 3, total.Get())
	assert.Equal(t, 2, calls)
}

func TestSequenceT(t *testing.T) {
	env := clock.NewEnv()
	name := atom.New(env, "n")
	count := atom.New(env, 1)
	on := atom.New(env, true)

	tuple := property.SequenceT3[string, int, bool](name, count, on)
	assert.Equal(t, property.Tuple3[string, int, bool]{V0: "n", V1: 1, V2: true}, tuple.Get())

	notified := 0
	sub := tuple.Subscribe(counter(&notified))
	count.Set(2)
	on.Set(false)
	assert.Equal(t, 2, notified)
	assert.Equal(t, property.Tuple3[string, int, bool]{V0: "n", V1: 2, V2: false}, tuple.Get())

	sub.Unsubscribe()
	assert.Equal(t, 0, name.Observers())
	assert.Equal(t, 0, count.Observers())
	assert.Equal(t, 0, on.Observers())
}

func TestCombineNMemoises(t *testing.T) {
	env := clock.NewEnv()
	a := atom.New(env, 1)
	b := atom.New(env, "x")
	calls := 0
	label := property.Combine2[int, string](a, b, func(n int, s string) string {
		calls++
		return s + strconv.Itoa(n)
	})

	assert.Equal(t, "x1", label.Get())
	assert.Equal(t, "x1", label.Get())
	b.Set("x")
	assert.Equal(t, "x1", label.Get())
	assert.Equal(t, 1, calls)

	a.Set(2)
	assert.Equal(t, "x2", label.Get())
	assert.Equal(t, 2, calls)
}

func TestCombine8(t *testing.T) {
	p := property.Combine8(
		property.Of(1), property.Of(2), property.Of(3), property.Of(4),
		property.Of(5), property.Of(6), property.Of(7), property.Of(8),
		func(a, b, c, d, e, f, g, h int) int {
			return sum(a, b, c, d, e, f, g, h)
		},
	)
	assert.Equal(t, 36, p.Get())
}
