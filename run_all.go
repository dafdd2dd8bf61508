package seqpipe

import (
	"context"
)

// RunAll runs a new Pipeline configured by opts and returns the produced values in
// sequence order. It owns the lifecycle: New, Run, collect.
//
// On failure the values consumed before the abort are returned together with the error.
func RunAll[T any](ctx context.Context, produce ProduceFunc[T], opts ...Option) ([]T, error) {
	p, err := New[T](opts...)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, p.Items())
	err = p.Run(ctx, produce, func(_ context.Context, item Item[T]) error {
		// single consumer goroutine: no locking needed
		out = append(out, item.Value)
		return nil
	})
	return out, err
}
