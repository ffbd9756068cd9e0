package observable

// Observer receives the values pushed by an Observable.
type Observer[A any] interface {
	Next(a A)
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc[A any] func(a A)

func (f ObserverFunc[A]) Next(a A) {
	f(a)
}

// Subscription detaches a single observer. Unsubscribe must be safe to call
// more than once.
type Subscription interface {
	Unsubscribe()
}

type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() {
	f()
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

// SubscriptionNone is the subscription returned when there is nothing to detach.
var SubscriptionNone Subscription = noopSubscription{}

// Observable is a push-only channel. Every Subscribe call is independent;
// detaching one observer never affects the others.
type Observable[A any] interface {
	Subscribe(observer Observer[A]) Subscription
}

// SubscribeFunc adapts a subscribe function to an Observable.
type SubscribeFunc[A any] func(observer Observer[A]) Subscription

func (f SubscribeFunc[A]) Subscribe(observer Observer[A]) Subscription {
	return f(observer)
}

type never[A any] struct{}

func (never[A]) Subscribe(Observer[A]) Subscription {
	return SubscriptionNone
}

// Never returns an Observable that never calls Next.
func Never[A any]() Observable[A] {
	return never[A]{}
}

// Composite bundles subscriptions so they detach together, in order.
func Composite(subs ...Subscription) Subscription {
	switch len(subs) {
	case 0:
		return SubscriptionNone
	case 1:
		return subs[0]
	}
	return SubscriptionFunc(func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	})
}

// Map transforms every value pushed by source with f at the moment it is pushed.
func Map[A, B any](source Observable[A], f func(A) B) Observable[B] {
	return SubscribeFunc[B](func(observer Observer[B]) Subscription {
		return source.Subscribe(ObserverFunc[A](func(a A) {
			observer.Next(f(a))
		}))
	})
}
