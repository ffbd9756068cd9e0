package property_test

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
	"github.com/delaneyj/frp/property"
)

// observableRecorder appends p's value every time it notifies.
func observableRecorder[A any](p property.Property[A], seen *[]A) observable.Observer[clock.Time] {
	return observable.ObserverFunc[clock.Time](func(clock.Time) {
		*seen = append(*seen, p.Get())
	})
}
