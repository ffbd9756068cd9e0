package property

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSame(t *testing.T) {
	t.Run("basic kinds", func(t *testing.T) {
		assert.True(t, same(1, 1))
		assert.False(t, same(1, 2))
		assert.True(t, same("a", "a"))
		assert.False(t, same(math.NaN(), math.NaN()))
	})

	t.Run("pointers", func(t *testing.T) {
		x, y := 1, 1
		assert.True(t, same(&x, &x))
		assert.False(t, same(&x, &y))
	})

	t.Run("slices by backing window", func(t *testing.T) {
		s := []int{1, 2, 3}
		assert.True(t, same(s, s))
		assert.False(t, same(s, s[:2]))
		assert.False(t, same(s, []int{1, 2, 3}))
		assert.True(t, same[[]int](nil, nil))
	})

	t.Run("maps by reference", func(t *testing.T) {
		m := map[string]int{"a": 1}
		assert.True(t, same(m, m))
		assert.False(t, same(m, map[string]int{"a": 1}))
	})

	t.Run("closures by identity", func(t *testing.T) {
		mk := func(n int) func() int {
			return func() int { return n }
		}
		f1, f2 := mk(1), mk(2)
		assert.True(t, same(f1, f1))
		assert.False(t, same(f1, f2))
		assert.True(t, same[func()](nil, nil))
		assert.False(t, same(f1, nil))
	})

	t.Run("closures behind interfaces never match", func(t *testing.T) {
		f := func() int { return 1 }
		assert.False(t, same[any](f, f))
		assert.False(t, same[any](struct{ f func() int }{f}, struct{ f func() int }{f}))
	})

	t.Run("structs field by field", func(t *testing.T) {
		type pair struct {
			n  int
			xs []int
		}
		xs := []int{1}
		assert.True(t, same(pair{1, xs}, pair{1, xs}))
		assert.False(t, same(pair{1, xs}, pair{1, []int{1}}))
		assert.True(t, same(Tuple2[int, string]{V0: 1, V1: "a"}, Tuple2[int, string]{V0: 1, V1: "a"}))
	})

	t.Run("interfaces by dynamic type", func(t *testing.T) {
		assert.True(t, same[any](1, 1))
		assert.False(t, same[any](1, int64(1)))
		assert.True(t, same[any](nil, nil))
		assert.False(t, same[any](nil, 1))
	})
}

func TestMemoKeepsCacheWhenFunctionPanics(t *testing.T) {
	calls := 0
	m := memo1(func(v int) int {
		calls++
		if v < 0 {
			panic("negative")
		}
		return v * 10
	})

	assert.Equal(t, 10, m(1))
	assert.Panics(t, func() { m(-1) })
	assert.Equal(t, 10, m(1))
	assert.Equal(t, 2, calls)
}
