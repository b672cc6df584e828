package purefn

import (
	"runtime"
	"sync"
	"time"

	"github.com/on-the-ground/underbar_go/shared/scheduler"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Throttle wraps fn so it runs at most once per wait window, on the leading
// edge: a call made while idle runs fn immediately and starts the window;
// calls made during the window are dropped. When the window's timer fires
// the throttle is idle again.
//
// The second return value stops the throttle. It cancels the pending window
// timer and every later call is dropped. If the throttled function is simply
// dropped instead, its timer is cancelled once the function is garbage
// collected.
func Throttle(fn func(), wait time.Duration, opts ...Option) (throttled func(), stop func()) {
	mustFunc(fn == nil)
	t := newThrottler(wait, NewConfig(opts...))
	h := &throttleHandle{t: t}
	runtime.AddCleanup(h, func(t *throttler) { t.stop() }, t)

	return func() {
			if h.t.admit() {
				fn()
			}
		}, func() {
			h.t.stop()
		}
}

// ThrottleI1 is Throttle for a one-argument function. Arguments of dropped
// calls are discarded.
func ThrottleI1[I1 any](fn func(I1), wait time.Duration, opts ...Option) (throttled func(I1), stop func()) {
	mustFunc(fn == nil)
	t := newThrottler(wait, NewConfig(opts...))
	h := &throttleHandle{t: t}
	runtime.AddCleanup(h, func(t *throttler) { t.stop() }, t)

	return func(i1 I1) {
			if h.t.admit() {
				fn(i1)
			}
		}, func() {
			h.t.stop()
		}
}

// ThrottleI1O1 is Throttle for a function with a result. A dropped call
// returns the result of the last call that ran (the zero value before any).
func ThrottleI1O1[I1, O1 any](fn func(I1) O1, wait time.Duration, opts ...Option) (throttled func(I1) O1, stop func()) {
	mustFunc(fn == nil)
	t := newThrottler(wait, NewConfig(opts...))
	h := &throttleHandle{t: t}
	runtime.AddCleanup(h, func(t *throttler) { t.stop() }, t)

	var (
		mu   sync.Mutex
		last O1
	)
	return func(i1 I1) O1 {
			if h.t.admit() {
				res := fn(i1)
				mu.Lock()
				last = res
				mu.Unlock()
				return res
			}
			mu.Lock()
			defer mu.Unlock()
			return last
		}, func() {
			h.t.stop()
		}
}

type throttleState int

const (
	throttleIdle throttleState = iota
	throttleCoolingDown
	throttleStopped
)

func (s throttleState) String() string {
	switch s {
	case throttleIdle:
		return "idle"
	case throttleCoolingDown:
		return "cooling-down"
	case throttleStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// throttleHandle is what the returned closures hold. The window timer only
// references the throttler, so the handle becomes unreachable with the closures.
type throttleHandle struct {
	t *throttler
}

type throttler struct {
	mu     sync.Mutex
	wait   time.Duration
	sched  *scheduler.Scheduler
	logger *zap.Logger

	state  throttleState
	window timespan.TimeSpan
	timer  *scheduler.Timer
	gen    uint64
}

func newThrottler(wait time.Duration, cfg Config) *throttler {
	return &throttler{
		wait:   wait,
		sched:  cfg.sched(),
		logger: cfg.Logger,
	}
}

// admit reports whether the caller may run the wrapped function now. An
// admitted call moves the throttle from idle to cooling-down.
func (t *throttler) admit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case throttleStopped:
		return false
	case throttleCoolingDown:
		if t.sched.Now().Before(t.window.End()) {
			return false
		}
		// the window is over but its timer has not run yet
		t.closeWindowLocked()
	}

	if t.wait <= 0 {
		return true
	}

	now := t.sched.Now()
	t.gen++
	gen := t.gen
	t.window = timespan.BetweenTimes(now, now.Add(t.wait))
	t.state = throttleCoolingDown

	timer, err := t.sched.Schedule(t.wait, func() { t.windowElapsed(gen) })
	if err != nil {
		// without a timer the window closes on the next call past its end
		t.logger.Warn("throttle window timer not scheduled", zap.Error(err))
		t.timer = nil
	} else {
		t.timer = timer
	}

	t.logger.Debug("throttle window opened",
		zap.Duration("wait", t.wait),
		zap.Time("window_end", t.window.End()),
	)
	return true
}

func (t *throttler) windowElapsed(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != throttleCoolingDown || t.gen != gen {
		return
	}
	t.timer = nil
	t.state = throttleIdle
	t.logger.Debug("throttle window closed")
}

func (t *throttler) closeWindowLocked() {
	if t.timer != nil {
		t.timer.Cancel()
		t.timer = nil
	}
	t.state = throttleIdle
}

func (t *throttler) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == throttleStopped {
		return
	}
	t.closeWindowLocked()
	t.state = throttleStopped
	t.logger.Debug("throttle stopped")
}

func (t *throttler) currentState() throttleState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
