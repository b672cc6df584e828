package purefn

import (
	"time"

	"github.com/on-the-ground/underbar_go/shared/scheduler"
)

// Delay schedules fn to run once, no earlier than wait from now, on the
// configured scheduler. The returned timer can be cancelled before it fires.
func Delay(fn func(), wait time.Duration, opts ...Option) (*scheduler.Timer, error) {
	mustFunc(fn == nil)
	return NewConfig(opts...).sched().Schedule(wait, fn)
}

// DelayI1 is Delay for a one-argument function; a1 is captured at call time.
func DelayI1[I1 any](fn func(I1), wait time.Duration, a1 I1, opts ...Option) (*scheduler.Timer, error) {
	mustFunc(fn == nil)
	return Delay(func() { fn(a1) }, wait, opts...)
}

func DelayI2[I1, I2 any](fn func(I1, I2), wait time.Duration, a1 I1, a2 I2, opts ...Option) (*scheduler.Timer, error) {
	mustFunc(fn == nil)
	return Delay(func() { fn(a1, a2) }, wait, opts...)
}
