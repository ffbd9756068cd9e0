package clock

import "time"

// Time stamps a notification. Only its ordering is meaningful.
type Time int64

type Clock interface {
	Now() Time
}

type ClockFunc func() Time

func (f ClockFunc) Now() Time {
	return f()
}

// Env is the execution context threaded into every Atom. Atoms created from
// a zero Env each fall back to a private counter clock; share one from NewEnv
// when stamps must be ordered across atoms.
type Env struct {
	Clock Clock
}

// NewCounterClock returns a logical clock that advances by one on every read.
func NewCounterClock() Clock {
	var t Time
	return ClockFunc(func() Time {
		t++
		return t
	})
}

// NewWallClock returns a clock reading monotonic nanoseconds since creation.
func NewWallClock() Clock {
	start := time.Now()
	return ClockFunc(func() Time {
		return Time(time.Since(start))
	})
}

// NewEnv is shorthand for an Env backed by a counter clock.
func NewEnv() Env {
	return Env{Clock: NewCounterClock()}
}
