package property

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/emitter"
	"github.com/delaneyj/frp/observable"
)

// switcher is the single owned slot holding the inner property currently
// tracked by a flattened property and the subscription feeding its hub.
type switcher[A any] struct {
	source   Property[Property[A]]
	hub      *emitter.Emitter[clock.Time]
	inner    Property[A]
	innerSub observable.Subscription
	outerSub observable.Subscription
	disposed bool
}

func (s *switcher[A]) resubscribe() {
	s.innerSub.Unsubscribe()
	s.innerSub = s.inner.Subscribe(s.hub)
}

func (s *switcher[A]) Next(t clock.Time) {
	if s.disposed {
		return
	}
	s.inner = s.source.Get()
	s.resubscribe()
	s.hub.Next(t)
}

func (s *switcher[A]) Get() A {
	// the tracked inner property changes on its own, never cache
	return s.inner.Get()
}

func (s *switcher[A]) Unsubscribe() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.outerSub.Unsubscribe()
	s.innerSub.Unsubscribe()
	s.innerSub = observable.SubscriptionNone
}

// Flatten follows whichever inner property source currently holds. When the
// outer channel fires the inner property is re-read, the previous inner
// channel is detached and the new one attached; the outer tick is then
// forwarded so subscribers learn about the switch. Forwarding only inner ticks
// would leave a subscriber unaware that Get now reads a different property, so
// a switch notifies even when the new inner value equals the old one.
//
// The returned subscription detaches both the outer channel and the inner
// channel being tracked. After disposal the output keeps reading the last
// tracked inner property.
func Flatten[A any](source Property[Property[A]]) (Property[A], observable.Subscription) {
	s := &switcher[A]{
		source:   source,
		hub:      emitter.New[clock.Time](),
		inner:    source.Get(),
		innerSub: observable.SubscriptionNone,
	}
	s.outerSub = source.Subscribe(s)
	s.resubscribe()
	return New(s.Get, s.hub), s
}
