package property

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
)

// subscribeAll attaches observer to every source and returns one handle
// detaching all of them.
func subscribeAll(observer observable.Observer[clock.Time], sources ...observable.Observable[clock.Time]) observable.Subscription {
	subs := make([]observable.Subscription, len(sources))
	for i, source := range sources {
		subs[i] = source.Subscribe(observer)
	}
	return observable.Composite(subs...)
}

func channels[A any](sources []Property[A]) []observable.Observable[clock.Time] {
	chans := make([]observable.Observable[clock.Time], len(sources))
	for i, source := range sources {
		chans[i] = source
	}
	return chans
}

// Sequence reads every source fresh on each Get. A notification from any
// source re-signals the aggregate.
func Sequence[A any](sources []Property[A]) Property[[]A] {
	sources = append([]Property[A](nil), sources...)
	chans := channels(sources)
	return New(
		func() []A {
			values := make([]A, len(sources))
			for i, source := range sources {
				values[i] = source.Get()
			}
			return values
		},
		observable.SubscribeFunc[clock.Time](func(observer observable.Observer[clock.Time]) observable.Subscription {
			return subscribeAll(observer, chans...)
		}),
	)
}

// SequenceS is Sequence over a keyed record. Members are subscribed in the
// iteration order captured when SequenceS is called.
func SequenceS[K comparable, A any](sources map[K]Property[A]) Property[map[K]A] {
	keys := make([]K, 0, len(sources))
	members := make([]Property[A], 0, len(sources))
	for k, source := range sources {
		keys = append(keys, k)
		members = append(members, source)
	}
	chans := channels(members)
	return New(
		func() map[K]A {
			values := make(map[K]A, len(keys))
			for i, k := range keys {
				values[k] = members[i].Get()
			}
			return values
		},
		observable.SubscribeFunc[clock.Time](func(observer observable.Observer[clock.Time]) observable.Subscription {
			return subscribeAll(observer, chans...)
		}),
	)
}

// Combine projects the current values of sources. It is Map over Sequence,
// and Sequence builds a fresh slice on every read, so project runs on every
// Get. Combine2 through Combine8 memoise field by field and skip project while
// every source yields an identical value.
func Combine[A, B any](project func(values ...A) B, sources ...Property[A]) Property[B] {
	return Map(Sequence(sources), func(values []A) B {
		return project(values...)
	})
}
