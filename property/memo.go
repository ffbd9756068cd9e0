package property

import (
	"reflect"
	"unsafe"
)

// memo1 caches f's last result keyed by the shallow identity of its argument.
// The cache is only written after f returns, so a panicking f leaves the
// previous result in place.
func memo1[A, B any](f func(A) B) func(A) B {
	var (
		hasValue bool
		lastA    A
		lastB    B
	)
	return func(a A) B {
		if hasValue && same(a, lastA) {
			return lastB
		}
		b := f(a)
		hasValue, lastA, lastB = true, a, b
		return b
	}
}

func memo2[A, B, C any](f func(A, B) C) func(A, B) C {
	var (
		hasValue bool
		lastA    A
		lastB    B
		lastC    C
	)
	return func(a A, b B) C {
		if hasValue && same(a, lastA) && same(b, lastB) {
			return lastC
		}
		c := f(a, b)
		hasValue, lastA, lastB, lastC = true, a, b, c
		return c
	}
}

// same reports whether a and b are shallowly identical: equal for basic
// kinds, the same referent for pointers, maps, chans and closures, the same
// backing window for slices. Composites recurse one field or element at a
// time with the same rule. Anything it cannot prove identical is reported as
// different: NaN never matches itself, and a func reached through an
// interface is never identical because its value is not addressable.
func same[A any](a, b A) bool {
	va := reflect.ValueOf(&a).Elem()
	vb := reflect.ValueOf(&b).Elem()
	return sameValue(va, vb)
}

func sameValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Invalid:
		return !b.IsValid()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Func:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		// Pointer() only yields the code pointer, which closures share.
		if !a.CanAddr() || !b.CanAddr() {
			return false
		}
		return *(*unsafe.Pointer)(a.Addr().UnsafePointer()) == *(*unsafe.Pointer)(b.Addr().UnsafePointer())
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return sameValue(ea, eb)
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return false
}
