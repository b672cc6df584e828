package collection

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/underbar_go/shared/helper"
	"go.uber.org/multierr"
)

// Method is what Invoke calls on each element: either a method looked up by
// name (MethodName) or a function taking the element as receiver (MethodFunc).
type Method[V any] interface {
	bind(receiver V) (call func(args []any) (any, error), err error)
}

type methodName[V any] string

func (m methodName[V]) bind(receiver V) (func([]any) (any, error), error) {
	rv := reflect.ValueOf(any(receiver))
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on nil receiver", ErrMethodNotFound, string(m))
	}
	method := rv.MethodByName(string(m))
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %q on %s", ErrMethodNotFound, string(m), rv.Type())
	}
	return func(args []any) (any, error) {
		return callMethod(method, string(m), args)
	}, nil
}

type methodFunc[V any] func(receiver V, args ...any) any

func (m methodFunc[V]) bind(receiver V) (func([]any) (any, error), error) {
	return func(args []any) (any, error) {
		return m(receiver, args...), nil
	}, nil
}

// MethodName invokes the exported method called name on each element.
// Pointer-receiver methods are only found when V is a pointer type.
func MethodName[V any](name string) Method[V] {
	if name == "" {
		return nil
	}
	return methodName[V](name)
}

// MethodFunc calls fn with each element as its receiver.
func MethodFunc[V any](fn func(receiver V, args ...any) any) Method[V] {
	if fn == nil {
		return nil
	}
	return methodFunc[V](fn)
}

// Invoke calls m on every value of c with args and collects the results in
// iteration order. A method with no results yields nil, one with several
// results yields them as a []any.
//
// Every element is resolved before anything is called: if any element lacks
// the method, Invoke calls nothing and returns all the misses combined.
func Invoke[K comparable, V any](c Collection[K, V], m Method[V], args ...any) ([]any, error) {
	mustCollection(c)
	if m == nil {
		return nil, ErrNoMethod
	}

	var errs error
	calls := MapWithKey(c, func(v V, k K, _ Collection[K, V]) func([]any) (any, error) {
		call, err := m.bind(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("element %v: %w", k, err))
		}
		return call
	})
	if errs != nil {
		return nil, errs
	}

	results := make([]any, 0, len(calls))
	for _, call := range calls {
		res, err := call(args)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// InvokeAs is Invoke with every result asserted to R. Results of another type
// are reported with helper.ErrUnexpectedType.
func InvokeAs[R any, K comparable, V any](c Collection[K, V], m Method[V], args ...any) ([]R, error) {
	raw, err := Invoke(c, m, args...)
	if err != nil {
		return nil, err
	}

	var errs error
	out := make([]R, 0, len(raw))
	for i, r := range raw {
		typed, err := helper.TypedValueOf[R](r)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("result %d: %w", i, err))
			continue
		}
		out = append(out, typed)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func callMethod(method reflect.Value, name string, args []any) (any, error) {
	mt := method.Type()
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (!mt.IsVariadic() && len(args) > fixed) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrBadArguments, name, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var want reflect.Type
		if i < fixed {
			want = mt.In(i)
		} else {
			want = mt.In(fixed).Elem()
		}
		v, err := argValue(a, want)
		if err != nil {
			return nil, fmt.Errorf("%w: %s argument %d: %w", ErrBadArguments, name, i, err)
		}
		in[i] = v
	}

	out := method.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		results := make([]any, len(out))
		for i, o := range out {
			results[i] = o.Interface()
		}
		return results, nil
	}
}

func argValue(a any, want reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not a %s", want)
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), want)
	}
	return v, nil
}
