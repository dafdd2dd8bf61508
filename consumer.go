package seqpipe

import (
	"context"
	"fmt"
)

// consumer drains the ring and hands items to consume in ascending order.
type consumer[T any] struct {
	p       *Pipeline[T]
	consume ConsumeFunc[T]
}

func newConsumer[T any](p *Pipeline[T], consume ConsumeFunc[T]) *consumer[T] {
	return &consumer[T]{p: p, consume: consume}
}

// run returns after consuming Items-1, the last sequence number.
func (c *consumer[T]) run(ctx context.Context) error {
	last := c.p.config.Items - 1
	for expected := 0; ; expected++ {
		if err := ctx.Err(); err != nil {
			return newItemError(err, expected, consumerRole)
		}

		item, err := c.p.ring.Pop()
		if err != nil {
			return newItemError(err, expected, consumerRole)
		}
		c.p.inst.depth.Add(-1)

		if item.Seq != expected {
			return newItemError(fmt.Errorf("%w: got %d, want %d", ErrOrderViolation, item.Seq, expected), item.Seq, consumerRole)
		}
		if err := callConsume(ctx, c.consume, item); err != nil {
			return newItemError(err, item.Seq, consumerRole)
		}
		c.p.inst.consumed.Add(1)

		if item.Seq == last {
			c.p.log.Debug().Int("seq", item.Seq).Msg("consumer_done")
			return nil
		}
		if err := c.p.sleeper.Sleep(ctx); err != nil {
			return newItemError(err, item.Seq, consumerRole)
		}
	}
}
