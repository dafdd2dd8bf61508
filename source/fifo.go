package source

import (
	"sync"

	"github.com/eapache/queue"
)

// FIFO hands out 0, 1, 2, ... in order. Producers then reach the gate almost in
// turn, which keeps parking to a minimum.
type FIFO struct {
	mu     sync.Mutex
	n      int
	q      *queue.Queue
	issued ledger
}

// NewFIFO returns a dispenser over [0, n).
func NewFIFO(n int) *FIFO {
	q := queue.New()
	for i := 0; i < n; i++ {
		q.Add(i)
	}
	return &FIFO{n: n, q: q, issued: make(ledger, n)}
}

// Claim implements Source.
func (f *FIFO) Claim() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.q.Length() == 0 {
		return 0, false
	}
	seq := f.q.Remove().(int)
	f.issued.mark(seq)
	return seq, true
}

// Len implements Source.
func (f *FIFO) Len() int { return f.n }

// Remaining returns how many numbers are still to be issued.
func (f *FIFO) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.q.Length()
}
