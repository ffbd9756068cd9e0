package atom

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/emitter"
	"github.com/delaneyj/frp/observable"
)

// Atom is a mutable reactive cell. Set stores the value and notifies every
// subscriber synchronously, in attachment order, before returning. Writes are
// never deduplicated.
//
// An Atom is bound to the goroutine that drives it and must not be shared
// across goroutines.
type Atom[A any] struct {
	env   clock.Env
	value A
	hub   *emitter.Emitter[clock.Time]
}

// New binds a cell to env. A zero Env gets its own counter clock.
func New[A any](env clock.Env, initial A) *Atom[A] {
	if env.Clock == nil {
		env.Clock = clock.NewCounterClock()
	}
	return &Atom[A]{
		env:   env,
		value: initial,
		hub:   emitter.New[clock.Time](),
	}
}

func (a *Atom[A]) Get() A {
	return a.value
}

func (a *Atom[A]) Set(value A) {
	a.value = value
	a.hub.Next(a.env.Clock.Now())
}

// Modify writes f applied to the current value.
func (a *Atom[A]) Modify(f func(A) A) {
	a.Set(f(a.value))
}

func (a *Atom[A]) Subscribe(observer observable.Observer[clock.Time]) observable.Subscription {
	return a.hub.Subscribe(observer)
}

// Observers reports how many subscriptions are attached.
func (a *Atom[A]) Observers() int {
	return a.hub.Len()
}
