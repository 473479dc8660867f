package search

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCheckEvery is the cancellation-check cadence: the context is polled
// once per 4096 candidates.
const DefaultCheckEvery = 4096

// Options configures an Exhaust run.
//
// TimeLimit     – wall-clock budget; 0 means unlimited. Must be ≥ 0.
// CheckEvery    – poll ctx once per this many candidates; a positive power of two.
// Logger        – receives debug records at start/finish; nil discards.
// Tracer        – span source; nil uses the global otel tracer provider.
// MeterProvider – instrument source; nil uses the global otel meter provider.
type Options struct {
	TimeLimit     time.Duration
	CheckEvery    int
	Logger        *slog.Logger
	Tracer        trace.Tracer
	MeterProvider metric.MeterProvider
}

// Option represents a functional option for configuring Exhaust.
type Option func(*Options)

// WithTimeLimit bounds the run's wall time. Panics with ErrBadTimeLimit on a
// negative duration.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// WithCheckEvery sets how many candidates pass between cancellation checks.
// Panics with ErrBadCheckEvery unless n is a positive power of two.
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 || n&(n-1) != 0 {
			panic(ErrBadCheckEvery.Error())
		}
		o.CheckEvery = n
	}
}

// WithLogger routes the engine's records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracer sets the tracer used for the per-run span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		o.Tracer = t
	}
}

// WithMeterProvider sets the provider for the engine's metric instruments.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		o.MeterProvider = mp
	}
}

// DefaultOptions returns the defaults:
//   - TimeLimit:     0 (unlimited).
//   - CheckEvery:    DefaultCheckEvery.
//   - Logger:        discarding logger.
//   - Tracer:        nil (global provider at run time).
//   - MeterProvider: nil (global provider at run time).
func DefaultOptions() Options {
	return Options{
		CheckEvery: DefaultCheckEvery,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// normalize fills zero fields of a hand-built Options with defaults.
func (o Options) normalize() Options {
	if o.CheckEvery <= 0 || o.CheckEvery&(o.CheckEvery-1) != 0 {
		o.CheckEvery = DefaultCheckEvery
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.TimeLimit < 0 {
		o.TimeLimit = 0
	}

	return o
}
