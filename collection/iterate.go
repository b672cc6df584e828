package collection

// Each calls fn once per element with its value, its key and c itself: in
// index order for a sequence, in insertion order for a mapping.
func Each[K comparable, V any](c Collection[K, V], fn func(value V, key K, c Collection[K, V])) {
	mustCollection(c)
	for k, v := range c.All() {
		fn(v, k, c)
	}
}

// Values returns the values of c as a positional slice.
func Values[K comparable, V any](c Collection[K, V]) []V {
	mustCollection(c)
	out := make([]V, 0, c.Len())
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		out = append(out, v)
	})
	return out
}

// Reduce folds c from its first value, starting at seed.
func Reduce[K comparable, V, A any](c Collection[K, V], fn func(acc A, v V) A, seed A) A {
	acc := seed
	for _, v := range Values(c) {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce1 folds c using its first value as the seed, starting from the
// second. It returns ErrEmptyReduce when c is empty.
func Reduce1[K comparable, V any](c Collection[K, V], fn func(acc, v V) V) (V, error) {
	values := Values(c)
	if len(values) == 0 {
		var zero V
		return zero, ErrEmptyReduce
	}
	return Reduce(Seq[V](values[1:]), fn, values[0]), nil
}
