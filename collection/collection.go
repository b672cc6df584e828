package collection

import (
	"fmt"
	"iter"
	"slices"
)

// Collection is either an ordered sequence (Seq) or a key-unique mapping
// (*Mapping). The interface is closed: no other type implements it.
type Collection[K comparable, V any] interface {
	// Len reports the number of elements.
	Len() int
	// All yields every (key, value) pair in iteration order.
	All() iter.Seq2[K, V]

	sealed()
}

var (
	_ Collection[int, any] = Seq[any](nil)
	_ Collection[string, any] = (*Mapping[string, any])(nil)
)

func mustCollection[K comparable, V any](c Collection[K, V]) {
	if c == nil {
		panic(fmt.Errorf("%w: got nil", ErrNotCollection))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Seq is an ordered sequence keyed by index 0..n-1.
type Seq[V any] []V

// From wraps a slice as a Seq without copying it.
func From[V any](items []V) Seq[V] {
	return Seq[V](items)
}

// Of builds a Seq from its arguments.
func Of[V any](items ...V) Seq[V] {
	return Seq[V](items)
}

func (s Seq[V]) Len() int { return len(s) }

func (s Seq[V]) All() iter.Seq2[int, V] { return slices.All(s) }

func (Seq[V]) sealed() {}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// Pair is one key-value entry of a Mapping.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// PairOf is shorthand for Pair{Key: k, Value: v}.
func PairOf[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Mapping is a key-unique collection that iterates in insertion order.
// A nil *Mapping reads as empty.
type Mapping[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{values: make(map[K]V)}
}

// MappingOf builds a Mapping from pairs, in argument order. A repeated key
// keeps its first position and its last value.
func MappingOf[K comparable, V any](pairs ...Pair[K, V]) *Mapping[K, V] {
	m := &Mapping[K, V]{
		keys:   make([]K, 0, len(pairs)),
		values: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// FromMap copies a Go map. Go does not order map iteration, so the
// resulting insertion order is unspecified.
func FromMap[K comparable, V any](src map[K]V) *Mapping[K, V] {
	m := &Mapping[K, V]{
		keys:   make([]K, 0, len(src)),
		values: make(map[K]V, len(src)),
	}
	for k, v := range src {
		m.Set(k, v)
	}
	return m
}

// Set adds or overwrites key. A new key goes to the end of the iteration order.
func (m *Mapping[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Mapping[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *Mapping[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Mapping[K, V]) Delete(key K) bool {
	if !m.Has(key) {
		return false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
	return true
}

func (m *Mapping[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Mapping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Keys returns the keys in iteration order.
func (m *Mapping[K, V]) Keys() []K {
	if m == nil {
		return []K{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in iteration order.
func (m *Mapping[K, V]) Values() []V {
	out := make([]V, 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// Clone returns an independent copy with the same iteration order.
func (m *Mapping[K, V]) Clone() *Mapping[K, V] {
	out := &Mapping[K, V]{
		keys:   make([]K, 0, m.Len()),
		values: make(map[K]V, m.Len()),
	}
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// ToMap copies the entries into a plain Go map.
func (m *Mapping[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

func (m *Mapping[K, V]) String() string {
	return fmt.Sprintf("%v", m.ToMap())
}

func (*Mapping[K, V]) sealed() {}
