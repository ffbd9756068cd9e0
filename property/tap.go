package property

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
)

// Tap runs f with the current value on every notification, before the
// downstream observer hears about it. Reads are untouched.
func Tap[A any](f func(A), fa Property[A]) Property[A] {
	return New(fa.Get, observable.SubscribeFunc[clock.Time](func(observer observable.Observer[clock.Time]) observable.Subscription {
		return fa.Subscribe(observable.ObserverFunc[clock.Time](func(t clock.Time) {
			f(fa.Get())
			observer.Next(t)
		}))
	}))
}
