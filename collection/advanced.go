package collection

import (
	"math/rand/v2"
	"reflect"
	"slices"
)

// Shuffle returns a uniformly random permutation of s. s is left untouched.
func Shuffle[S ~[]E, E any](s S) S {
	return ShuffleWith(s, nil)
}

// ShuffleWith is Shuffle driven by r. A nil r uses the global source.
func ShuffleWith[S ~[]E, E any](s S, r *rand.Rand) S {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	out := make(S, len(s))
	copy(out, s)
	// Fisher–Yates: position i takes a random element from [0, i].
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Zip groups the elements of seqs by position. The result is as long as
// the longest input; positions past the end of a shorter input are Absent.
func Zip[T any](seqs ...[]T) [][]Maybe[T] {
	longest := Reduce(Of(seqs...), func(n int, s []T) int {
		return max(n, len(s))
	}, 0)

	out := make([][]Maybe[T], longest)
	for i := range out {
		row := make([]Maybe[T], len(seqs))
		for j, s := range seqs {
			if i < len(s) {
				row[j] = Present(s[i])
			} else {
				row[j] = Absent[T]()
			}
		}
		out[i] = row
	}
	return out
}

// Flatten expands nested slices and arrays of any element type, depth first
// and left to right. Strings, byte slices and all other values are kept as
// they are.
func Flatten(nested []any) []any {
	out := make([]any, 0, len(nested))
	return flattenInto(out, nested)
}

func flattenInto(out []any, items []any) []any {
	for _, item := range items {
		switch v := item.(type) {
		case []any:
			out = flattenInto(out, v)
		case string, []byte, nil:
			out = append(out, v)
		default:
			rv := reflect.ValueOf(item)
			if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
				out = append(out, item)
				continue
			}
			elems := make([]any, rv.Len())
			for i := range elems {
				elems[i] = rv.Index(i).Interface()
			}
			out = flattenInto(out, elems)
		}
	}
	return out
}

// Intersection returns the distinct elements of the first input that occur
// in every other input, in first-occurrence order.
func Intersection[E comparable](seqs ...[]E) []E {
	first, ok := First(seqs)
	if !ok {
		return []E{}
	}
	others := Of(seqs[1:]...)
	return Filter(Of(Uniq(first)...), func(v E) bool {
		return Every(others, func(other []E) bool {
			return Contains(Of(other...), v)
		})
	})
}

// Difference returns the distinct elements of first that occur in none of
// others, in first-occurrence order.
func Difference[E comparable](first []E, others ...[]E) []E {
	rest := slices.Concat(others...)
	return Reject(Of(Uniq(first)...), func(v E) bool {
		return Contains(Of(rest...), v)
	})
}
