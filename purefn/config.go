package purefn

import (
	"github.com/on-the-ground/underbar_go/shared/scheduler"
	"go.uber.org/zap"
)

// DefaultMaxEntries bounds a memo table's head generation when no size is given.
const DefaultMaxEntries uint32 = 1 << 16

// Backend selects the table a memoized function stores results in.
type Backend int

const (
	// BackendTrie keeps every result until the bounded generations rotate.
	BackendTrie Backend = iota
	// BackendRistretto admits results by access frequency and may drop them.
	BackendRistretto
)

// Config collects the knobs shared by the decorators in this package.
type Config struct {
	MaxEntries uint32
	Backend    Backend
	Scheduler  *scheduler.Scheduler
	Logger     *zap.Logger
}

type Option func(*Config)

func WithMaxEntries(n uint32) Option {
	return func(c *Config) { c.MaxEntries = n }
}

func WithBackend(b Backend) Option {
	return func(c *Config) { c.Backend = b }
}

// WithScheduler sets the deferred-callback queue used by Delay and Throttle.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(c *Config) { c.Scheduler = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig applies opts over the defaults. Zero or nil fields fall back to
// their defaults; a nil Scheduler means scheduler.Default(), resolved on first use.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

func (c Config) sched() *scheduler.Scheduler {
	if c.Scheduler != nil {
		return c.Scheduler
	}
	return scheduler.Default()
}
