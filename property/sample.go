package property

import "github.com/delaneyj/frp/observable"

// IO is a deferred read.
type IO[A any] func() A

// Functor is any carrier of occurrences that can map its contents. FB carries
// B, and mapping with f produces FA carrying A. Extra type parameters of a
// concrete carrier live inside FB and FA.
type Functor[FB, FA, B, A any] interface {
	Map(fb FB, f func(B) A) FA
}

type FunctorFunc[FB, FA, B, A any] func(fb FB, f func(B) A) FA

func (fn FunctorFunc[FB, FA, B, A]) Map(fb FB, f func(B) A) FA {
	return fn(fb, f)
}

// Sample replaces every occurrence in sampler with p's value read at the
// moment the carrier maps that occurrence.
func Sample[FB, FA, B, A any](F Functor[FB, FA, B, A], p Property[A], sampler FB) FA {
	return F.Map(sampler, func(B) A { return p.Get() })
}

// SampleIO replaces every occurrence with a deferred read of p. Nothing is
// read until the IO is invoked.
func SampleIO[FB, FA, B, A any](F Functor[FB, FA, B, IO[A]], p Property[A], sampler FB) FA {
	return F.Map(sampler, func(B) IO[A] { return p.Get })
}

// SliceFunctor maps eagerly, in order.
func SliceFunctor[B, A any]() Functor[[]B, []A, B, A] {
	return FunctorFunc[[]B, []A, B, A](func(bs []B, f func(B) A) []A {
		as := make([]A, len(bs))
		for i, b := range bs {
			as[i] = f(b)
		}
		return as
	})
}

func MapFunctor[K comparable, B, A any]() Functor[map[K]B, map[K]A, B, A] {
	return FunctorFunc[map[K]B, map[K]A, B, A](func(bs map[K]B, f func(B) A) map[K]A {
		as := make(map[K]A, len(bs))
		for k, b := range bs {
			as[k] = f(b)
		}
		return as
	})
}

// IOFunctor maps lazily: f runs each time the resulting IO is invoked.
func IOFunctor[B, A any]() Functor[IO[B], IO[A], B, A] {
	return FunctorFunc[IO[B], IO[A], B, A](func(fb IO[B], f func(B) A) IO[A] {
		return func() A { return f(fb()) }
	})
}

// ObservableFunctor maps each event as it is pushed.
func ObservableFunctor[B, A any]() Functor[observable.Observable[B], observable.Observable[A], B, A] {
	return FunctorFunc[observable.Observable[B], observable.Observable[A], B, A](observable.Map[B, A])
}
