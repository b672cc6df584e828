package purefn_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/underbar_go/purefn"
	"github.com/on-the-ground/underbar_go/shared/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDelay_RunsOnceAfterWait(t *testing.T) {
	s := scheduler.NewManual(epoch)
	count := 0
	timer, err := purefn.Delay(func() { count++ }, 100*time.Millisecond, purefn.WithScheduler(s))
	require.NoError(t, err)

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, count)

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, count)
	assert.True(t, timer.Fired())

	s.Advance(time.Second)
	assert.Equal(t, 1, count)
}

func TestDelayI2_PassesArguments(t *testing.T) {
	s := scheduler.NewManual(epoch)
	var got []string
	_, err := purefn.DelayI2(func(a, b string) {
		got = append(got, a, b)
	}, 500*time.Millisecond, "a", "b", purefn.WithScheduler(s))
	require.NoError(t, err)

	s.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDelayI1_Cancel(t *testing.T) {
	s := scheduler.NewManual(epoch)
	got := 0
	timer, err := purefn.DelayI1(func(n int) { got = n }, time.Second, 7, purefn.WithScheduler(s))
	require.NoError(t, err)

	assert.True(t, timer.Cancel())
	s.Advance(2 * time.Second)
	assert.Equal(t, 0, got)
}

func TestDelay_OrderBetweenDelays(t *testing.T) {
	s := scheduler.NewManual(epoch)
	var order []int
	_, _ = purefn.DelayI1(func(n int) { order = append(order, n) }, 30*time.Millisecond, 3, purefn.WithScheduler(s))
	_, _ = purefn.DelayI1(func(n int) { order = append(order, n) }, 10*time.Millisecond, 1, purefn.WithScheduler(s))
	_, _ = purefn.DelayI1(func(n int) { order = append(order, n) }, 20*time.Millisecond, 2, purefn.WithScheduler(s))

	s.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestDelay_ClosedScheduler(t *testing.T) {
	s := scheduler.NewManual(epoch)
	s.Close(context.Background())

	_, err := purefn.Delay(func() {}, time.Millisecond, purefn.WithScheduler(s))
	assert.ErrorIs(t, err, scheduler.ErrClosedScheduler)
}

func TestDelay_DefaultScheduler(t *testing.T) {
	var fired atomic.Bool
	_, err := purefn.Delay(func() { fired.Store(true) }, 10*time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, fired.Load, time.Second, 5*time.Millisecond)
}

func TestDelay_NilFuncPanics(t *testing.T) {
	assert.PanicsWithValue(t, purefn.ErrNilFunc, func() {
		_, _ = purefn.Delay(nil, time.Second)
	})
}
