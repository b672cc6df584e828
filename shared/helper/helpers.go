package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	return TypedValueOf[T](res)
}

// TypedValueOf asserts raw to T. A nil raw converts to the zero value of T
// when T is an interface, pointer, slice, map, chan or func type.
func TypedValueOf[T any](raw any) (T, error) {
	if val, ok := raw.(T); ok {
		return val, nil
	}
	var zero T
	if raw == nil && acceptsNil[T]() {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: %T, want %T", ErrUnexpectedType, raw, zero)
}

// MustGetTypedValue is the panic-on-failure variant of TypedValueOf.
// Use it where the type is guaranteed by construction.
func MustGetTypedValue[T any](raw any) T {
	res, err := TypedValueOf[T](raw)
	if err != nil {
		panic(err)
	}
	return res
}

func acceptsNil[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
