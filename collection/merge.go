package collection

import "fmt"

func mustTarget[K comparable, V any](target *Mapping[K, V]) {
	if target == nil {
		panic(fmt.Errorf("%w: nil target mapping", ErrNotCollection))
	}
}

// Extend copies every entry of sources into target, left to right, so later
// sources win. It returns target itself. Nil sources are skipped.
func Extend[K comparable, V any](target *Mapping[K, V], sources ...*Mapping[K, V]) *Mapping[K, V] {
	mustTarget(target)
	for _, src := range sources {
		Each[K, V](src, func(v V, k K, _ Collection[K, V]) {
			target.Set(k, v)
		})
	}
	return target
}

// Defaults fills keys missing from target with entries from sources. Keys
// already present are never overwritten, so earlier sources win. It returns
// target itself.
func Defaults[K comparable, V any](target *Mapping[K, V], sources ...*Mapping[K, V]) *Mapping[K, V] {
	mustTarget(target)
	for _, src := range sources {
		Each[K, V](src, func(v V, k K, _ Collection[K, V]) {
			if !target.Has(k) {
				target.Set(k, v)
			}
		})
	}
	return target
}
