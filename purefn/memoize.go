package purefn

import (
	"runtime"

	"github.com/on-the-ground/underbar_go/pure"
)

// MemoizeI1O1 caches fn's result per distinct argument. Arguments must be
// comparable or implement fmt.Stringer.
//
//	slowSquare := purefn.MemoizeI1O1(func(n int) int { return n * n })
func MemoizeI1O1[I1, O1 any](fn func(I1) O1, opts ...Option) func(I1) O1 {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) O1 {
			return fn(arg[I1](args, 0))
		},
		NewConfig(opts...),
	)
	return func(i1 I1) O1 {
		return memoized(i1)
	}
}

// MemoizeI2O1 caches per full argument list: (1, 2) and (1, 3) are
// different entries.
func MemoizeI2O1[I1, I2, O1 any](fn func(I1, I2) O1, opts ...Option) func(I1, I2) O1 {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) O1 {
			return fn(arg[I1](args, 0), arg[I2](args, 1))
		},
		NewConfig(opts...),
	)
	return func(i1 I1, i2 I2) O1 {
		return memoized(i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1, opts ...Option) func(I1, I2, I3) O1 {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) O1 {
			return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
		},
		NewConfig(opts...),
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(i1, i2, i3)
	}
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1, opts ...Option) func(I1, I2, I3, I4) O1 {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) O1 {
			return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
		},
		NewConfig(opts...),
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return memoized(i1, i2, i3, i4)
	}
}

// MemoizeI1O2 is MemoizeI1O1 for functions returning two values, typically
// (value, error). Errors are cached like any other result.
func MemoizeI1O2[I1, O1, O2 any](fn func(I1) (O1, O2), opts ...Option) func(I1) (O1, O2) {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) result[O1, O2] {
			o1, o2 := fn(arg[I1](args, 0))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		NewConfig(opts...),
	)
	return func(i1 I1) (O1, O2) {
		res := memoized(i1)
		return res.O1, res.O2
	}
}

func MemoizeI2O2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2), opts ...Option) func(I1, I2) (O1, O2) {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) result[O1, O2] {
			o1, o2 := fn(arg[I1](args, 0), arg[I2](args, 1))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		NewConfig(opts...),
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := memoized(i1, i2)
		return res.O1, res.O2
	}
}

func MemoizeI3O2[I1, I2, I3, O1, O2 any](fn func(I1, I2, I3) (O1, O2), opts ...Option) func(I1, I2, I3) (O1, O2) {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) result[O1, O2] {
			o1, o2 := fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		NewConfig(opts...),
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := memoized(i1, i2, i3)
		return res.O1, res.O2
	}
}

func MemoizeI4O2[I1, I2, I3, I4, O1, O2 any](fn func(I1, I2, I3, I4) (O1, O2), opts ...Option) func(I1, I2, I3, I4) (O1, O2) {
	mustFunc(fn == nil)
	memoized := memoize(
		func(args ...any) result[O1, O2] {
			o1, o2 := fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2), arg[I4](args, 3))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		NewConfig(opts...),
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := memoized(i1, i2, i3, i4)
		return res.O1, res.O2
	}
}

// memo owns the table of one memoized function. It is what the returned
// closure keeps alive, so a ristretto cache is closed once the closure is gone.
type memo[O any] struct {
	table pure.Table[O]
}

func memoize[O any](pureFn func(...any) O, cfg Config) func(...any) O {
	m := &memo[O]{table: newTable[O](cfg)}
	if rt, ok := m.table.(*pure.RistrettoTable[O]); ok {
		runtime.AddCleanup(m, func(rt *pure.RistrettoTable[O]) { rt.Close() }, rt)
	}

	return func(args ...any) O {
		keys := pure.KeysOf(args...)
		v, ok := m.table.Load(keys)
		if !ok {
			v = pureFn(args...)
			m.table.Store(keys, v)
		}
		return v
	}
}

func newTable[O any](cfg Config) pure.Table[O] {
	if cfg.Backend == BackendRistretto {
		rt, err := pure.NewRistrettoTable[O](int64(cfg.MaxEntries))
		if err == nil {
			return rt
		}
		cfg.Logger.Sugar().Warnf("falling back to trie memo table: %v", err)
	}
	return pure.NewTrie[O](cfg.MaxEntries)
}
