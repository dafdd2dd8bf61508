// Package gate admits sequence numbers one at a time, in ascending order.
//
// A producer holding sequence number s calls AwaitTurn(s) and is parked until every
// number below s has been admitted and advanced past. The producer that was admitted
// calls Advance(s) once its item is committed downstream, which moves the cursor to
// s+1 and wakes the parked producers so each can recheck whether it is next.
//
// All parked producers share one condition. Advance broadcasts and every waiter
// rechecks the cursor, so no per-number wait primitive is allocated.
package gate

import (
	"errors"
	"fmt"
	"sync"
)

const Namespace = "gate"

var (
	// ErrClosed is returned to callers parked on (or arriving at) a closed gate.
	ErrClosed = errors.New(Namespace + ": closed")
	// ErrOutOfRange is returned for sequence numbers outside [0, n).
	ErrOutOfRange = errors.New(Namespace + ": sequence number out of range")
	// ErrAlreadyAdmitted means the cursor has already moved past the sequence number,
	// i.e. the same number was handed out twice.
	ErrAlreadyAdmitted = errors.New(Namespace + ": sequence number already admitted")
	// ErrOutOfTurn means Advance was called by a holder of a number that is not next.
	ErrOutOfTurn = errors.New(Namespace + ": advance out of turn")
)

// Gate is the ordering gate. The zero value is not usable; construct with New.
type Gate struct {
	mu     sync.Mutex
	turn   *sync.Cond
	n      int
	next   int
	closed bool

	parked int // producers currently waiting
	parks  uint64
}

// Stats is a point-in-time view of the gate.
type Stats struct {
	Next   int
	Parked int
	Parks  uint64
}

// New returns a gate admitting sequence numbers 0..n-1.
func New(n int) *Gate {
	g := &Gate{n: n}
	g.turn = sync.NewCond(&g.mu)
	return g
}

// AwaitTurn blocks until seq is the next number to be admitted.
// It returns immediately when seq is already next.
func (g *Gate) AwaitTurn(seq int) error {
	if seq < 0 || seq >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, seq, g.n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if seq < g.next {
		return fmt.Errorf("%w: %d (next is %d)", ErrAlreadyAdmitted, seq, g.next)
	}
	if g.closed {
		return ErrClosed
	}
	if seq == g.next {
		return nil
	}

	g.parked++
	g.parks++
	for seq != g.next && !g.closed {
		g.turn.Wait()
	}
	g.parked--

	if seq != g.next {
		return ErrClosed
	}
	return nil
}

// Advance moves the cursor past seq. Only the holder of the current number may call it.
func (g *Gate) Advance(seq int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}
	if seq != g.next {
		return fmt.Errorf("%w: got %d, next is %d", ErrOutOfTurn, seq, g.next)
	}
	g.next++
	if g.parked > 0 {
		g.turn.Broadcast()
	}
	return nil
}

// Next returns the sequence number currently admitted.
func (g *Gate) Next() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next
}

// Done reports whether every sequence number has been advanced past.
func (g *Gate) Done() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next >= g.n
}

// Close wakes every parked producer with ErrClosed. Idempotent.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	g.turn.Broadcast()
}

// Stats returns the current cursor and wait counters.
func (g *Gate) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Stats{Next: g.next, Parked: g.parked, Parks: g.parks}
}
