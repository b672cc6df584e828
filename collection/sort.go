package collection

import (
	"cmp"
	"slices"
)

// Criterion selects the sort key of a value. Build one with ByField or ByFunc.
type Criterion[V any, O cmp.Ordered] interface {
	keyOf(v V) (O, error)
}

type byField[V any, O cmp.Ordered] struct {
	name string
}

func (c byField[V, O]) keyOf(v V) (O, error) {
	return fieldAs[O](v, c.name)
}

type byFunc[V any, O cmp.Ordered] struct {
	fn func(V) O
}

func (c byFunc[V, O]) keyOf(v V) (O, error) {
	return c.fn(v), nil
}

// ByField sorts by the named struct field or map entry of each value.
func ByField[V any, O cmp.Ordered](name string) Criterion[V, O] {
	return byField[V, O]{name: name}
}

// ByFunc sorts by the key fn computes for each value.
func ByFunc[V any, O cmp.Ordered](fn func(V) O) Criterion[V, O] {
	if fn == nil {
		return nil
	}
	return byFunc[V, O]{fn: fn}
}

// SortBy returns the values of c in ascending key order. Values with equal
// keys keep their iteration order. c itself is left untouched.
func SortBy[K comparable, V any, O cmp.Ordered](c Collection[K, V], by Criterion[V, O]) ([]V, error) {
	mustCollection(c)
	if by == nil {
		return nil, ErrNoCriterion
	}

	items := make([]keyed[O, V], 0, c.Len())
	for _, v := range Values(c) {
		key, err := by.keyOf(v)
		if err != nil {
			return nil, err
		}
		items = append(items, keyed[O, V]{key: key, value: v})
	}

	slices.SortStableFunc(items, func(a, b keyed[O, V]) int {
		return cmp.Compare(a.key, b.key)
	})

	out := make([]V, len(items))
	for i, it := range items {
		out[i] = it.value
	}
	return out, nil
}

type keyed[O cmp.Ordered, V any] struct {
	key   O
	value V
}
