package emitter

import "github.com/delaneyj/frp/observable"

type entry[A any] struct {
	observer observable.Observer[A]
	active   bool
}

// Emitter is a multicast hub. Next delivers to every attached observer in
// attachment order before returning. An Emitter is also an Observer so it
// can be subscribed into other channels.
type Emitter[A any] struct {
	entries []*entry[A]
}

func New[A any]() *Emitter[A] {
	return &Emitter[A]{}
}

func (e *Emitter[A]) Next(a A) {
	if len(e.entries) == 0 {
		return
	}
	// observers may attach or detach while we dispatch
	snapshot := make([]*entry[A], len(e.entries))
	copy(snapshot, e.entries)
	for _, en := range snapshot {
		if en.active {
			en.observer.Next(a)
		}
	}
}

func (e *Emitter[A]) Subscribe(observer observable.Observer[A]) observable.Subscription {
	en := &entry[A]{observer: observer, active: true}
	e.entries = append(e.entries, en)
	return observable.SubscriptionFunc(func() {
		if !en.active {
			return
		}
		en.active = false
		e.remove(en)
	})
}

func (e *Emitter[A]) remove(en *entry[A]) {
	for i, other := range e.entries {
		if other == en {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Len reports how many observers are attached.
func (e *Emitter[A]) Len() int {
	return len(e.entries)
}

// Merge composes channels into one that forwards notifications from any of
// them. Attachment is lazy: nothing is subscribed upstream until the merged
// channel itself is subscribed, and detaching it detaches every input.
func Merge[A any](sources ...observable.Observable[A]) observable.Observable[A] {
	return observable.SubscribeFunc[A](func(observer observable.Observer[A]) observable.Subscription {
		hub := New[A]()
		subs := make([]observable.Subscription, 0, len(sources)+1)
		subs = append(subs, hub.Subscribe(observer))
		for _, source := range sources {
			subs = append(subs, source.Subscribe(hub))
		}
		return observable.Composite(subs...)
	})
}
