package collection

import "reflect"

// Truthy reports whether v differs from the zero value of its type. For
// interface-typed values the dynamic value is checked, and nil is falsy.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	return rv.IsValid() && !rv.IsZero()
}

// Every reports whether pred holds for every value. It is true for an empty
// collection. A nil pred tests the values themselves with Truthy.
func Every[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	if pred == nil {
		pred = Truthy[V]
	}
	return Reduce(c, func(all bool, v V) bool {
		return all && pred(v)
	}, true)
}

// Some reports whether pred holds for at least one value. It is false for
// an empty collection. A nil pred tests the values themselves with Truthy.
func Some[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	if pred == nil {
		pred = Truthy[V]
	}
	return !Every(c, func(v V) bool {
		return !pred(v)
	})
}
