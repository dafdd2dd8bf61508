package source

import (
	"sync"

	"github.com/valyala/fastrand"
)

// Biased reproduces the classic load-balancing dispenser:
//
//   - the first producers-1 claims pick a random number from the low end of the range;
//   - after that, claim c hands out c-producers, the number the gate will need soonest;
//   - if that one is taken, it tries a random number just past c;
//   - if that is taken too, it falls back to the lowest unissued number.
//
// After the c-th claim (c >= producers) every number <= c-producers has been issued,
// so no producer can wait on the gate for a number nobody holds.
type Biased struct {
	mu        sync.Mutex
	n         int
	producers int
	counter   int
	issued    ledger
	rng       fastrand.RNG
}

// BiasedOption configures a Biased source.
type BiasedOption func(*Biased)

// WithSeed makes the random picks reproducible.
func WithSeed(seed uint32) BiasedOption {
	return func(b *Biased) { b.rng.Seed(seed) }
}

// NewBiased returns a dispenser over [0, n) tuned for the given number of producers.
// producers below 1 is treated as 1.
func NewBiased(n, producers int, opts ...BiasedOption) *Biased {
	if producers < 1 {
		producers = 1
	}
	b := &Biased{
		n:         n,
		producers: producers,
		issued:    make(ledger, n),
	}
	b.rng.Seed(fastrand.Uint32())
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Claim implements Source.
func (b *Biased) Claim() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.counter++
	if b.counter > b.n {
		return 0, false
	}

	var found int
	if b.counter < b.producers {
		found = b.random(2*b.producers) % b.n
	} else {
		found = b.counter - b.producers
		if b.issued.claimed(found) {
			found = (b.counter + b.random(b.producers)) % b.n
		}
	}
	if b.issued.claimed(found) {
		found = b.issued.lowestFree()
	}

	b.issued.mark(found)
	return found, true
}

// Len implements Source.
func (b *Biased) Len() int { return b.n }

func (b *Biased) random(bound int) int {
	return int(b.rng.Uint32n(uint32(bound)))
}
