package clock_test

import (
	"testing"

	"github.com/delaneyj/frp/clock"
	"github.com/stretchr/testify/assert"
)

func TestCounterClock(t *testing.T) {
	c := clock.NewCounterClock()
	assert.Equal(t, clock.Time(1), c.Now())
	assert.Equal(t, clock.Time(2), c.Now())
}

func TestWallClockIsMonotonic(t *testing.T) {
	c := clock.NewWallClock()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
}
