package seqpipe

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ygrebnov/seqpipe/buffer"
	"github.com/ygrebnov/seqpipe/gate"
	"github.com/ygrebnov/seqpipe/internal/delay"
	"github.com/ygrebnov/seqpipe/source"
)

// Pipeline moves Items sequence numbers from concurrent producers to a single consumer
// in ascending order. A Pipeline runs once.
type Pipeline[T any] struct {
	// noCopy prevents accidental copying of the pipeline.
	//go:nocopy
	nc noCopy

	config *config
	log    zerolog.Logger
	inst   instruments

	src     source.Source
	gate    *gate.Gate
	ring    *buffer.Ring[Item[T]]
	sleeper delay.Sleeper

	started atomic.Bool
	aborted atomic.Bool
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Stats is a snapshot of a pipeline's gate and ring.
type Stats struct {
	Gate gate.Stats
	Ring buffer.Stats
}

// New creates a Pipeline using functional options.
func New[T any](opts ...Option) (*Pipeline[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	ring, err := buffer.New[Item[T]](cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &Pipeline[T]{
		config:  &cfg,
		log:     cfg.Logger.With().Str("component", Namespace).Logger(),
		inst:    newInstruments(cfg.Metrics),
		src:     cfg.newSource(),
		gate:    gate.New(cfg.Items),
		ring:    ring,
		sleeper: delay.New(cfg.MaxDelay),
	}, nil
}

// Run starts the producers and the consumer and blocks until the consumer has processed
// the last sequence number and every producer has seen the source exhausted.
//
// The first failure anywhere aborts the run and is returned. If ctx is canceled first,
// Run returns ctx.Err(). Calling Run a second time returns ErrInvalidState.
func (p *Pipeline[T]) Run(ctx context.Context, produce ProduceFunc[T], consume ConsumeFunc[T]) error {
	if produce == nil || consume == nil {
		return ErrNilFunc
	}
	if !p.started.CompareAndSwap(false, true) {
		return ErrInvalidState
	}

	g, gctx := errgroup.WithContext(ctx)

	lc := newLifecycleCoordinator(p.gate.Close, p.ring.Close, func() { p.aborted.Store(true) })
	stop := context.AfterFunc(ctx, lc.Close)
	defer stop()
	// Any failure tears the run down; gctx alone cannot wake goroutines parked on a sync.Cond.
	// The cause is recorded before Close so the ErrClosed fallout never shadows it.
	var (
		causeOnce sync.Once
		cause     error
	)
	abortOnErr := func(err error) error {
		if err != nil {
			causeOnce.Do(func() { cause = err })
			lc.Close()
		}
		return err
	}

	p.log.Info().
		Int("items", p.config.Items).
		Int("producers", p.config.Producers).
		Int("capacity", p.config.Capacity).
		Msg("run_started")
	start := time.Now()

	for i := 0; i < p.config.Producers; i++ {
		pr := newProducer(i, p, produce)
		g.Go(func() error { return abortOnErr(pr.run(gctx)) })
	}
	c := newConsumer(p, consume)
	g.Go(func() error { return abortOnErr(c.run(gctx)) })

	if err := g.Wait(); err == nil {
		p.log.Info().Dur("elapsed", time.Since(start)).Msg("run_completed")
		return nil
	}

	err := cause

	if ctxErr := ctx.Err(); ctxErr != nil && isShutdown(err) {
		err = ctxErr
	}
	p.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("run_aborted")
	return err
}

// isShutdown reports whether err is only a consequence of the run being torn down.
func isShutdown(err error) bool {
	return errors.Is(err, gate.ErrClosed) ||
		errors.Is(err, buffer.ErrClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Items returns N.
func (p *Pipeline[T]) Items() int { return p.config.Items }

// Stats returns the current gate and ring counters.
func (p *Pipeline[T]) Stats() Stats {
	return Stats{Gate: p.gate.Stats(), Ring: p.ring.Stats()}
}

// Aborted reports whether the run was torn down before completing.
func (p *Pipeline[T]) Aborted() bool { return p.aborted.Load() }
