// Package property pairs a synchronous read with a change notification
// channel. Push says "something changed now", pull says "here is the current
// value"; the two are decoupled so values are only computed when read.
//
// Derived properties hold no subscriptions of their own: their channel is the
// union of their sources' channels and their read pulls from the sources.
// Only Flatten and Scan own an internal subscription, returned to the caller
// for disposal.
//
// Everything here is synchronous and single goroutine. There is no batching
// and no glitch suppression: a source reaching a subscriber through two
// paths notifies it twice.
package property

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/emitter"
	"github.com/delaneyj/frp/observable"
)

// Property is a time-varying value. Get is always current when called from
// inside a notification caused by an upstream write.
type Property[A any] interface {
	observable.Observable[clock.Time]
	Get() A
}

type property[A any] struct {
	get    func() A
	source observable.Observable[clock.Time]
}

func (p *property[A]) Get() A {
	return p.get()
}

func (p *property[A]) Subscribe(observer observable.Observer[clock.Time]) observable.Subscription {
	return p.source.Subscribe(observer)
}

// New builds a Property from a read function and the channel announcing its
// changes.
func New[A any](get func() A, source observable.Observable[clock.Time]) Property[A] {
	return &property[A]{get: get, source: source}
}

// Of is a constant. Its channel never fires.
func Of[A any](a A) Property[A] {
	return New(func() A { return a }, observable.Never[clock.Time]())
}

// Map recomputes f only when the value read from fa is not identical to the
// one seen last time. Notifications are forwarded unchanged, even when the
// result would be the same.
func Map[A, B any](fa Property[A], f func(A) B) Property[B] {
	memoF := memo1(f)
	return &property[B]{
		get:    func() B { return memoF(fa.Get()) },
		source: fa,
	}
}

// Ap applies the function held by fab to the value held by fa, memoised on
// both. A notification from either side is forwarded.
func Ap[A, B any](fab Property[func(A) B], fa Property[A]) Property[B] {
	apply := memo2(func(f func(A) B, a A) B { return f(a) })
	return &property[B]{
		get:    func() B { return apply(fab.Get(), fa.Get()) },
		source: emitter.Merge[clock.Time](fab, fa),
	}
}

// ApFirst keeps fa's value while also reacting to fb.
func ApFirst[A, B any](fa Property[A], fb Property[B]) Property[A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond keeps fb's value while also reacting to fa.
func ApSecond[A, B any](fa Property[A], fb Property[B]) Property[B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}
