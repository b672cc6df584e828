package purefn

import "github.com/on-the-ground/underbar_go/shared/helper"

// Once wraps fn so it runs on the first call only; every later call returns
// the first result.
func Once[O1 any](fn func() O1) func() O1 {
	mustFunc(fn == nil)
	called := once(func(...any) O1 {
		return fn()
	})
	return func() O1 {
		return called()
	}
}

// OnceI1O1 runs fn with the arguments of the first call only. Later calls
// return the first result whatever their arguments.
func OnceI1O1[I1, O1 any](fn func(I1) O1) func(I1) O1 {
	mustFunc(fn == nil)
	called := once(func(args ...any) O1 {
		return fn(arg[I1](args, 0))
	})
	return func(i1 I1) O1 {
		return called(i1)
	}
}

func OnceI2O1[I1, I2, O1 any](fn func(I1, I2) O1) func(I1, I2) O1 {
	mustFunc(fn == nil)
	called := once(func(args ...any) O1 {
		return fn(arg[I1](args, 0), arg[I2](args, 1))
	})
	return func(i1 I1, i2 I2) O1 {
		return called(i1, i2)
	}
}

func OnceI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) func(I1, I2, I3) O1 {
	mustFunc(fn == nil)
	called := once(func(args ...any) O1 {
		return fn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
	})
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return called(i1, i2, i3)
	}
}

func OnceI1O2[I1, O1, O2 any](fn func(I1) (O1, O2)) func(I1) (O1, O2) {
	mustFunc(fn == nil)
	called := once(func(args ...any) result[O1, O2] {
		o1, o2 := fn(arg[I1](args, 0))
		return result[O1, O2]{O1: o1, O2: o2}
	})
	return func(i1 I1) (O1, O2) {
		res := called(i1)
		return res.O1, res.O2
	}
}

func OnceI2O2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2)) func(I1, I2) (O1, O2) {
	mustFunc(fn == nil)
	called := once(func(args ...any) result[O1, O2] {
		o1, o2 := fn(arg[I1](args, 0), arg[I2](args, 1))
		return result[O1, O2]{O1: o1, O2: o2}
	})
	return func(i1 I1, i2 I2) (O1, O2) {
		res := called(i1, i2)
		return res.O1, res.O2
	}
}

// once is not safe for concurrent use; a panic in fn leaves it uncalled.
func once[O any](fn func(...any) O) func(...any) O {
	var (
		called bool
		res    O
	)
	return func(args ...any) O {
		if !called {
			res = fn(args...)
			called = true
		}
		return res
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func arg[T any](args []any, i int) T {
	return helper.MustGetTypedValue[T](args[i])
}
