package seqpipe

import "context"

// RunStream runs a new Pipeline configured by opts in the background and delivers the
// produced values, in sequence order, on the returned values channel. A non-nil error
// is returned only for setup failures (invalid options).
//
// Lifecycle:
//   - values is closed once the run ends, successfully or not.
//   - errs then receives the run's error, if any, and is closed.
//   - the values channel is unbuffered: a slow reader backpressures the consumer, which
//     in turn backpressures producers through the ring. Cancel ctx to abandon the stream.
//
//nolint:gocritic // ignore unnamed results.
func RunStream[T any](ctx context.Context, produce ProduceFunc[T], opts ...Option) (<-chan T, <-chan error, error) {
	p, err := New[T](opts...)
	if err != nil {
		return nil, nil, err
	}

	values := make(chan T)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		err := p.Run(ctx, produce, func(c context.Context, item Item[T]) error {
			select {
			case values <- item.Value:
				return nil
			case <-c.Done():
				return c.Err()
			}
		})
		close(values)
		if err != nil {
			errs <- err
		}
	}()

	return values, errs, nil
}
