// Package scheduler is the deferred-callback queue behind delayed and
// throttled functions.
//
// A Scheduler keeps one ordered queue of pending timers. Timers fire no
// earlier than their requested delay, in nondecreasing order of fire time;
// timers sharing a fire time fire in the order they were scheduled. Callbacks
// never run concurrently with each other: a real-clock scheduler runs them on
// a single runner goroutine, a manual scheduler runs them on the goroutine
// calling Advance.
//
// Example:
//
//	s := scheduler.New()
//	defer s.Close(context.Background())
//
//	t, _ := s.Schedule(500*time.Millisecond, func() { fmt.Println("later") })
//	t.Cancel() // nothing is printed
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/on-the-ground/underbar_go/shared/orderedbuffer"
	"go.uber.org/zap"
)

var (
	ErrClosedScheduler = errors.New("scheduler is closed")
	ErrNilCallback     = errors.New("scheduler: nil callback")
)

type Option func(*Scheduler)

// WithLogger sets the logger used for timer lifecycle events.
// The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type Scheduler struct {
	mu    sync.Mutex
	queue *orderedbuffer.OrderedBuffer[*Timer]

	manual    bool
	manualNow time.Time

	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	logger *zap.Logger
}

// New returns a scheduler driven by the wall clock. Its runner goroutine lives
// until Close is called.
func New(opts ...Option) *Scheduler {
	s := newScheduler(opts)
	go s.run()
	return s
}

// NewManual returns a scheduler whose clock starts at start and only moves
// when Advance is called. No goroutine is started.
func NewManual(start time.Time, opts ...Option) *Scheduler {
	s := newScheduler(opts)
	s.manual = true
	s.manualNow = start
	close(s.done)
	return s
}

var defaultScheduler = sync.OnceValue(func() *Scheduler {
	return New()
})

// Default returns the process-wide scheduler, starting it on first use.
func Default() *Scheduler {
	return defaultScheduler()
}

func newScheduler(opts []Option) *Scheduler {
	s := &Scheduler{
		queue: orderedbuffer.NewOrderedBuffer(16, func(a, b *Timer) int {
			return a.fireAt.Compare(b.fireAt)
		}),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now reports the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	if !s.manual {
		return time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manualNow
}

func (s *Scheduler) nowLocked() time.Time {
	if s.manual {
		return s.manualNow
	}
	return time.Now()
}

// Schedule registers fn to run once, no earlier than wait from now.
// A negative wait is treated as zero.
func (s *Scheduler) Schedule(wait time.Duration, fn func()) (*Timer, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if wait < 0 {
		wait = 0
	}

	s.mu.Lock()
	now := s.nowLocked()
	t := newTimer(s, fn, now, now.Add(wait))
	if err := s.queue.Insert(t); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrClosedScheduler, err)
	}
	head, _ := s.queue.Peek()
	s.mu.Unlock()

	s.logger.Debug("timer scheduled",
		zap.String("timer_id", t.id),
		zap.Duration("wait", wait),
		zap.Time("fire_at", t.fireAt),
	)

	if head == t {
		s.signal()
	}
	return t, nil
}

// Pending reports how many timers are waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Advance moves a manual scheduler's clock forward by d, firing every timer
// that becomes due, in order. Timers scheduled by those callbacks fire too if
// they fall inside the same window. It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if !s.manual {
		panic("scheduler: Advance called on a real-clock scheduler")
	}

	s.mu.Lock()
	target := s.manualNow.Add(d)
	s.mu.Unlock()

	fired := 0
	for {
		s.mu.Lock()
		head, ok := s.queue.Peek()
		if !ok || head.fireAt.After(target) {
			s.manualNow = target
			s.mu.Unlock()
			return fired
		}
		_, _ = s.queue.Pop()
		if head.fireAt.After(s.manualNow) {
			s.manualNow = head.fireAt
		}
		s.mu.Unlock()

		if s.fire(head) {
			fired++
		}
	}
}

// Close stops the runner and cancels every pending timer. It waits for the
// runner to exit or for ctx to be done, whichever comes first.
func (s *Scheduler) Close(ctx context.Context) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		rest := s.queue.Close()
		s.mu.Unlock()

		for _, t := range rest {
			t.state.CompareAndSwap(timerPending, timerCancelled)
		}
		if !s.manual {
			close(s.stop)
		}
		s.logger.Debug("scheduler closed", zap.Int("cancelled", len(rest)))
	})

	select {
	case <-s.done:
	case <-ctx.Done():
	}
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) remove(t *Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Remove(func(other *Timer) bool { return other == t })
}

func (s *Scheduler) run() {
	defer close(s.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		s.mu.Lock()
		now := s.nowLocked()
		due := s.queue.PopWhile(func(t *Timer) bool {
			return !t.fireAt.After(now)
		})
		next, hasNext := s.queue.Peek()
		s.mu.Unlock()

		if len(due) > 0 {
			for _, t := range due {
				s.fire(t)
			}
			continue
		}

		var fireCh <-chan time.Time
		if hasNext {
			timer.Reset(next.fireAt.Sub(now))
			fireCh = timer.C
		}

		select {
		case <-s.stop:
			return
		case <-s.wake:
		case <-fireCh:
		}
		timer.Stop()
	}
}

// fire runs t's callback unless it was cancelled meanwhile. A callback that
// panics still counts as fired.
func (s *Scheduler) fire(t *Timer) (fired bool) {
	if !t.state.CompareAndSwap(timerPending, timerFired) {
		return false
	}
	fired = true

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("timer callback panicked",
				zap.String("timer_id", t.id),
				zap.Any("panic", r),
			)
		}
	}()

	s.logger.Debug("timer fired", zap.String("timer_id", t.id))
	t.fn()
	return
}
