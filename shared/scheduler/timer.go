package scheduler

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

const (
	timerPending int32 = iota
	timerFired
	timerCancelled
)

// Timer is the handle of one scheduled callback. It fires at most once.
type Timer struct {
	id          string
	fn          func()
	scheduledAt time.Time
	fireAt      time.Time
	state       atomic.Int32
	owner       *Scheduler
}

func newTimer(owner *Scheduler, fn func(), scheduledAt, fireAt time.Time) *Timer {
	return &Timer{
		id:          uuid.New().String(),
		fn:          fn,
		scheduledAt: scheduledAt,
		fireAt:      fireAt,
		owner:       owner,
	}
}

func (t *Timer) ID() string {
	return t.id
}

func (t *Timer) FireAt() time.Time {
	return t.fireAt
}

// Span is the interval between scheduling and the earliest fire time.
func (t *Timer) Span() timespan.TimeSpan {
	return timespan.BetweenTimes(t.scheduledAt, t.fireAt)
}

// Cancel prevents the callback from running. It reports false when the timer
// already fired or was cancelled before.
func (t *Timer) Cancel() bool {
	if !t.state.CompareAndSwap(timerPending, timerCancelled) {
		return false
	}
	t.owner.remove(t)
	t.owner.logger.Debug("timer cancelled", zap.String("timer_id", t.id))
	return true
}

func (t *Timer) Fired() bool {
	return t.state.Load() == timerFired
}

func (t *Timer) Cancelled() bool {
	return t.state.Load() == timerCancelled
}

func (t *Timer) Pending() bool {
	return t.state.Load() == timerPending
}
