package seqpipe

import (
	"context"
	"fmt"
)

// Item is a produced value together with its sequence number.
type Item[T any] struct {
	Seq   int
	Value T
}

// ProduceFunc builds the value for sequence number seq. It runs on a producer goroutine
// before the producer waits for its turn, so producers work on different numbers in parallel.
type ProduceFunc[T any] func(ctx context.Context, seq int) (T, error)

// ConsumeFunc processes one item. Items arrive in ascending Seq order on a single goroutine.
type ConsumeFunc[T any] func(ctx context.Context, item Item[T]) error

// Identity is the minimal producer: the sequence number is the item.
func Identity(_ context.Context, seq int) (int, error) { return seq, nil }

// ProduceValue adapts func(seq) T to ProduceFunc[T].
func ProduceValue[T any](fn func(seq int) T) ProduceFunc[T] {
	return func(_ context.Context, seq int) (T, error) { return fn(seq), nil }
}

// ConsumeValue adapts func(item) to ConsumeFunc[T].
func ConsumeValue[T any](fn func(item Item[T])) ConsumeFunc[T] {
	return func(_ context.Context, item Item[T]) error { fn(item); return nil }
}

// callProduce runs fn and turns a panic into ErrPanicked.
func callProduce[T any](ctx context.Context, fn ProduceFunc[T], seq int) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, p)
		}
	}()
	return fn(ctx, seq)
}

// callConsume runs fn and turns a panic into ErrPanicked.
func callConsume[T any](ctx context.Context, fn ConsumeFunc[T], item Item[T]) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, p)
		}
	}()
	return fn(ctx, item)
}
