package emitter_test

import (
	"testing"

	"github.com/delaneyj/frp/emitter"
	"github.com/delaneyj/frp/observable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder[A any](name string, log *[]string) observable.Observer[A] {
	return observable.ObserverFunc[A](func(A) {
		*log = append(*log, name)
	})
}

func TestEmitterDeliversInAttachmentOrder(t *testing.T) {
	e := emitter.New[int]()
	var log []string
	e.Subscribe(recorder[int]("a", &log))
	e.Subscribe(recorder[int]("b", &log))
	e.Subscribe(recorder[int]("c", &log))

	e.Next(1)
	assert.Equal(t, []string{"a", "b", "c"}, log)
}

func TestEmitterUnsubscribe(t *testing.T) {
	e := emitter.New[int]()
	var log []string
	subA := e.Subscribe(recorder[int]("a", &log))
	e.Subscribe(recorder[int]("b", &log))
	require.Equal(t, 2, e.Len())

	subA.Unsubscribe()
	subA.Unsubscribe()
	assert.Equal(t, 1, e.Len())

	e.Next(1)
	assert.Equal(t, []string{"b"}, log)
}

func TestEmitterSameObserverTwice(t *testing.T) {
	e := emitter.New[int]()
	count := 0
	o := observable.ObserverFunc[int](func(int) { count++ })
	first := e.Subscribe(o)
	e.Subscribe(o)

	e.Next(1)
	assert.Equal(t, 2, count)

	first.Unsubscribe()
	e.Next(1)
	assert.Equal(t, 3, count)
}

func TestEmitterDetachDuringDispatch(t *testing.T) {
	e := emitter.New[int]()
	var log []string
	var subB observable.Subscription
	e.Subscribe(observable.ObserverFunc[int](func(int) {
		log = append(log, "a")
		subB.Unsubscribe()
	}))
	subB = e.Subscribe(recorder[int]("b", &log))

	e.Next(1)
	assert.Equal(t, []string{"a"}, log)
}

func TestMerge(t *testing.T) {
	left, right := emitter.New[int](), emitter.New[int]()
	merged := emitter.Merge[int](left, right)

	// lazy until subscribed
	assert.Equal(t, 0, left.Len())

	var got []int
	sub := merged.Subscribe(observable.ObserverFunc[int](func(v int) {
		got = append(got, v)
	}))
	assert.Equal(t, 1, left.Len())
	assert.Equal(t, 1, right.Len())

	left.Next(1)
	right.Next(2)
	assert.Equal(t, []int{1, 2}, got)

	sub.Unsubscribe()
	assert.Equal(t, 0, left.Len())
	assert.Equal(t, 0, right.Len())

	left.Next(3)
	assert.Equal(t, []int{1, 2}, got)
}
