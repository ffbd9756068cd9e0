package property

import (
	"github.com/delaneyj/frp/atom"
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
)

// Scan folds the events of source into an Atom seeded with initial and
// returns it as a read-only Property. Each event writes f(current, event),
// which notifies the Atom's subscribers. The returned subscription detaches
// from source.
func Scan[A, B any](env clock.Env, f func(acc B, a A) B, initial B, source observable.Observable[A]) (Property[B], observable.Subscription) {
	cell := atom.New(env, initial)
	sub := source.Subscribe(observable.ObserverFunc[A](func(a A) {
		cell.Set(f(cell.Get(), a))
	}))
	return New(cell.Get, cell), sub
}

// FromObservable holds the latest event of source, starting at initial.
func FromObservable[A any](env clock.Env, initial A, source observable.Observable[A]) (Property[A], observable.Subscription) {
	return Scan(env, func(_ A, a A) A { return a }, initial, source)
}
