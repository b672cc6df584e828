package collection

import "fmt"

// Maybe holds a value or marks its absence. Zip uses it to pad shorter inputs.
type Maybe[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

func Absent[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// OrElse returns the held value, or fallback when absent.
func (m Maybe[T]) OrElse(fallback T) T {
	if !m.present {
		return fallback
	}
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", m.value)
}
