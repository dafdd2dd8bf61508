package seqpipe

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqpipe/metrics"
	"github.com/ygrebnov/seqpipe/source"
)

// Option configures a Pipeline. Options return an error on invalid input.
type Option func(*config) error

// WithItems sets N, the length of the sequence (must be > 0).
func WithItems(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return invalid("items", n)
		}
		cfg.Items = n
		return nil
	}
}

// WithProducers sets the number of producer goroutines (must be > 0).
func WithProducers(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return invalid("producers", n)
		}
		cfg.Producers = n
		return nil
	}
}

// WithCapacity sets the ring buffer capacity (must be > 0).
func WithCapacity(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return invalid("capacity", n)
		}
		cfg.Capacity = n
		return nil
	}
}

// WithMaxDelay enables simulated latency: each producer sleeps up to d before producing,
// and the consumer sleeps up to d after consuming.
func WithMaxDelay(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("max_delay", "must be >= 0"))
		}
		cfg.MaxDelay = d
		return nil
	}
}

// WithSource replaces the default biased dispenser. fn receives Items and Producers.
func WithSource(fn func(items, producers int) source.Source) Option {
	return func(cfg *config) error {
		if fn == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("source", "nil constructor"))
		}
		cfg.NewSource = fn
		return nil
	}
}

// WithFIFOSource hands sequence numbers out in ascending order.
func WithFIFOSource() Option {
	return WithSource(func(items, _ int) source.Source { return source.NewFIFO(items) })
}

// WithSeed seeds the default biased dispenser for reproducible claim orders.
func WithSeed(seed uint32) Option {
	return func(cfg *config) error {
		cfg.Seed = seed
		cfg.seeded = true
		return nil
	}
}

// WithLogger sets the logger used for lifecycle and diagnostic events.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) error { cfg.Logger = l; return nil }
}

// WithMetrics records pipeline instruments into p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("metrics", "nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
