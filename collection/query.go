package collection

import "fmt"

// Identity returns v.
func Identity[T any](v T) T {
	return v
}

// First returns the first element of s, or false if s is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return s[0], true
}

// FirstN returns a copy of the first n elements of s, fewer if s is shorter.
func FirstN[S ~[]E, E any](s S, n int) S {
	n = max(0, min(n, len(s)))
	out := make(S, n)
	copy(out, s[:n])
	return out
}

// Last returns the last element of s, or false if s is empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return s[len(s)-1], true
}

// LastN returns a copy of the last n elements of s. LastN(s, 0) is empty.
func LastN[S ~[]E, E any](s S, n int) S {
	n = max(0, min(n, len(s)))
	out := make(S, n)
	copy(out, s[len(s)-n:])
	return out
}

// IndexOf returns the position of the first element equal to target, or -1.
func IndexOf[E comparable](s []E, target E) int {
	found := -1
	Each(Seq[E](s), func(v E, i int, _ Collection[int, E]) {
		if found == -1 && v == target {
			found = i
		}
	})
	return found
}

// FilterWithKey keeps the values for which pred returns true.
func FilterWithKey[K comparable, V any](c Collection[K, V], pred func(V, K, Collection[K, V]) bool) []V {
	out := make([]V, 0)
	Each(c, func(v V, k K, c Collection[K, V]) {
		if pred(v, k, c) {
			out = append(out, v)
		}
	})
	return out
}

// Filter keeps the values for which pred returns true.
func Filter[K comparable, V any](c Collection[K, V], pred func(V) bool) []V {
	return FilterWithKey(c, func(v V, _ K, _ Collection[K, V]) bool {
		return pred(v)
	})
}

// Reject keeps the values for which pred returns false.
func Reject[K comparable, V any](c Collection[K, V], pred func(V) bool) []V {
	return Filter(c, func(v V) bool {
		return !pred(v)
	})
}

// Uniq drops repeated elements, keeping first occurrences in order. Each
// element is looked up in the result so far, so it is O(n²); fine for the
// small slices it is meant for.
func Uniq[E comparable](s []E) []E {
	out := make([]E, 0, len(s))
	Each(Seq[E](s), func(v E, _ int, _ Collection[int, E]) {
		if IndexOf(out, v) == -1 {
			out = append(out, v)
		}
	})
	return out
}

// MapWithKey applies fn to every element, in iteration order.
func MapWithKey[K comparable, V, R any](c Collection[K, V], fn func(V, K, Collection[K, V]) R) []R {
	mustCollection(c)
	out := make([]R, 0, c.Len())
	Each(c, func(v V, k K, c Collection[K, V]) {
		out = append(out, fn(v, k, c))
	})
	return out
}

// Map applies fn to every value, in iteration order.
func Map[K comparable, V, R any](c Collection[K, V], fn func(V) R) []R {
	return MapWithKey(c, func(v V, _ K, _ Collection[K, V]) R {
		return fn(v)
	})
}

// Pluck reads key from every map in c. A map without key yields the zero value.
func Pluck[K, MK comparable, MV any](c Collection[K, map[MK]MV], key MK) []MV {
	return Map(c, func(m map[MK]MV) MV {
		return m[key]
	})
}

// PluckField reads the field called name from every element. Elements may be
// structs, pointers to structs, or maps with string-kinded keys; a map
// without the entry yields nil.
func PluckField[K comparable, V any](c Collection[K, V], name string) ([]any, error) {
	var err error
	out := MapWithKey(c, func(v V, k K, _ Collection[K, V]) any {
		if err != nil {
			return nil
		}
		f, ferr := fieldOf(v, name)
		if ferr != nil {
			err = fmt.Errorf("element %v: %w", k, ferr)
		}
		return f
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Contains reports whether any value of c equals target.
func Contains[K, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, v V) bool {
		return found || v == target
	}, false)
}
