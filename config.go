package seqpipe

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqpipe/metrics"
	"github.com/ygrebnov/seqpipe/source"
)

// config holds Pipeline configuration.
type config struct {
	// Items is N, the number of sequence numbers [0, N) to move through the pipeline.
	// Default: 100
	Items int

	// Producers is the number of concurrent producer goroutines.
	// Default: 4
	Producers int

	// Capacity is the number of slots in the ring buffer.
	// Default: 8
	Capacity int

	// MaxDelay bounds the simulated latency added before each produce and after each consume.
	// Default: 0 (disabled)
	MaxDelay time.Duration

	// NewSource builds the dispenser. Nil selects source.NewBiased.
	NewSource func(items, producers int) source.Source

	// Seed, when set, seeds the default biased dispenser.
	Seed   uint32
	seeded bool

	Logger  zerolog.Logger
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Items:     100,
		Producers: 4,
		Capacity:  8,
		MaxDelay:  0,
		Logger:    zerolog.Nop(),
		Metrics:   metrics.Noop{},
	}
}

// validateConfig checks the invariants New relies on.
func validateConfig(cfg *config) error {
	switch {
	case cfg.Items < 1:
		return invalid("items", cfg.Items)
	case cfg.Producers < 1:
		return invalid("producers", cfg.Producers)
	case cfg.Capacity < 1:
		return invalid("capacity", cfg.Capacity)
	case cfg.MaxDelay < 0:
		return errorc.With(ErrInvalidConfig, errorc.String("max_delay", "must be >= 0, got "+cfg.MaxDelay.String()))
	}
	return nil
}

func invalid(field string, got int) error {
	return errorc.With(ErrInvalidConfig, errorc.String(field, "must be > 0, got "+strconv.Itoa(got)))
}

// newSource builds the configured dispenser.
func (c *config) newSource() source.Source {
	if c.NewSource != nil {
		return c.NewSource(c.Items, c.Producers)
	}
	var opts []source.BiasedOption
	if c.seeded {
		opts = append(opts, source.WithSeed(c.Seed))
	}
	return source.NewBiased(c.Items, c.Producers, opts...)
}
