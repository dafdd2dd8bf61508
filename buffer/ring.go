package buffer

import (
	"errors"
	"sync"
)

const Namespace = "buffer"

var (
	ErrClosed          = errors.New(Namespace + ": closed")
	ErrInvalidCapacity = errors.New(Namespace + ": capacity must be > 0")
)

// Ring is a fixed-capacity FIFO shared by producers and a consumer.
// Push blocks while the ring is full, Pop blocks while it is empty.
// A single mutex covers the whole ring.
type Ring[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	slots []T
	write int // next slot to fill
	read  int // next slot to drain
	count int

	closed bool
	stats  Stats
}

// Stats are cumulative counters since construction.
type Stats struct {
	Pushes     uint64
	Pops       uint64
	Peak       int    // highest occupancy observed
	FullWaits  uint64 // pushes that had to wait for space
	EmptyWaits uint64 // pops that had to wait for data
}

// New returns a ring holding at most capacity items.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	r := &Ring[T]{slots: make([]T, capacity)}
	r.notFull = sync.NewCond(&r.mu)
	r.notEmpty = sync.NewCond(&r.mu)
	return r, nil
}

// Push appends v, waiting for a free slot if needed.
func (r *Ring[T]) Push(v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.closed && r.count == len(r.slots) {
		r.stats.FullWaits++
		for !r.closed && r.count == len(r.slots) {
			r.notFull.Wait()
		}
	}
	if r.closed {
		return ErrClosed
	}

	r.put(v)
	r.notEmpty.Signal()
	return nil
}

// TryPush appends v without waiting. It reports false when the ring is full.
func (r *Ring[T]) TryPush(v T) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false, ErrClosed
	}
	if r.count == len(r.slots) {
		return false, nil
	}
	r.put(v)
	r.notEmpty.Signal()
	return true, nil
}

// Pop removes the oldest item, waiting for one if needed.
// After Close, remaining items are still returned; ErrClosed follows once the ring is empty.
func (r *Ring[T]) Pop() (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.closed && r.count == 0 {
		r.stats.EmptyWaits++
		for !r.closed && r.count == 0 {
			r.notEmpty.Wait()
		}
	}
	if r.count == 0 {
		var zero T
		return zero, ErrClosed
	}

	v := r.take()
	r.notFull.Signal()
	return v, nil
}

// TryPop removes the oldest item without waiting. It reports false when the ring is empty.
func (r *Ring[T]) TryPop() (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if r.count == 0 {
		if r.closed {
			return zero, false, ErrClosed
		}
		return zero, false, nil
	}
	v := r.take()
	r.notFull.Signal()
	return v, true, nil
}

func (r *Ring[T]) put(v T) {
	r.slots[r.write] = v
	r.write = (r.write + 1) % len(r.slots)
	r.count++
	r.stats.Pushes++
	if r.count > r.stats.Peak {
		r.stats.Peak = r.count
	}
}

func (r *Ring[T]) take() T {
	var zero T
	v := r.slots[r.read]
	r.slots[r.read] = zero
	r.read = (r.read + 1) % len(r.slots)
	r.count--
	r.stats.Pops++
	return v
}

// Close rejects further pushes and wakes every waiter. Idempotent.
func (r *Ring[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.notFull.Broadcast()
	r.notEmpty.Broadcast()
}

// Len returns the number of buffered items.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.slots) }

// Stats returns a copy of the cumulative counters.
func (r *Ring[T]) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
