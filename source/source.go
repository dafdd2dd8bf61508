// Package source hands out sequence numbers to producers.
//
// Every implementation returns each number in [0, n) exactly once and then reports
// exhaustion. Claims are serialized inside the source, so callers need no locking.
package source

// Source dispenses unique sequence numbers.
type Source interface {
	// Claim returns the next sequence number, or ok == false once all numbers are issued.
	Claim() (seq int, ok bool)
	// Len returns n, the size of the sequence.
	Len() int
}

// ledger records which numbers have been issued.
type ledger []bool

func (l ledger) claimed(seq int) bool { return l[seq] }

func (l ledger) mark(seq int) {
	if l[seq] {
		// unreachable while the owning source holds its mutex
		panic("source: sequence number issued twice")
	}
	l[seq] = true
}

// lowestFree returns the lowest number not yet issued, or -1.
func (l ledger) lowestFree() int {
	for i, c := range l {
		if !c {
			return i
		}
	}
	return -1
}
