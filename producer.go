package seqpipe

import (
	"context"
	"time"
)

// producer claims sequence numbers and commits them to the ring in gate order.
type producer[T any] struct {
	id      int
	p       *Pipeline[T]
	produce ProduceFunc[T]
}

func newProducer[T any](id int, p *Pipeline[T], produce ProduceFunc[T]) *producer[T] {
	return &producer[T]{id: id, p: p, produce: produce}
}

// run loops until the source is exhausted or the run is torn down.
func (pr *producer[T]) run(ctx context.Context) error {
	log := pr.p.log.With().Int("producer", pr.id).Logger()
	committed := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		seq, ok := pr.p.src.Claim()
		if !ok {
			log.Debug().Int("committed", committed).Msg("producer_done")
			return nil
		}
		pr.p.inst.claims.Add(1)

		if err := pr.commit(ctx, seq); err != nil {
			return newItemError(err, seq, pr.id)
		}
		committed++
	}
}

// commit produces seq and pushes it once seq is next.
func (pr *producer[T]) commit(ctx context.Context, seq int) error {
	if err := pr.p.sleeper.Sleep(ctx); err != nil {
		return err
	}
	v, err := callProduce(ctx, pr.produce, seq)
	if err != nil {
		return err
	}

	// The gate and ring locks are taken one after the other, never nested.
	if next := pr.p.gate.Next(); seq != next {
		pr.p.inst.parks.Add(1)
		pr.p.log.Trace().Int("producer", pr.id).Int("seq", seq).Int("next", next).Msg("gate_park")
	}
	start := time.Now()
	if err := pr.p.gate.AwaitTurn(seq); err != nil {
		return err
	}
	pr.p.inst.gateWait.Record(time.Since(start).Seconds())

	if err := pr.p.ring.Push(Item[T]{Seq: seq, Value: v}); err != nil {
		return err
	}
	pr.p.inst.depth.Add(1)
	pr.p.inst.produced.Add(1)

	return pr.p.gate.Advance(seq)
}
