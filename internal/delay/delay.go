// Package delay simulates variable-latency work.
package delay

import (
	"context"
	"time"

	"github.com/valyala/fastrand"
)

// Sleeper sleeps for a random duration in [0, Max).
// A zero Max makes Sleep a no-op apart from the context check.
type Sleeper struct {
	Max time.Duration
}

// New returns a Sleeper bounded by d.
func New(d time.Duration) Sleeper { return Sleeper{Max: d} }

// Duration draws the next random duration.
func (s Sleeper) Duration() time.Duration {
	if s.Max <= 0 {
		return 0
	}
	bound := s.Max
	if bound > time.Duration(^uint32(0)) {
		// fastrand draws 32-bit values; coarsen to microseconds for long bounds
		us := uint32(min(bound/time.Microsecond, time.Duration(^uint32(0))))
		return time.Duration(fastrand.Uint32n(us)) * time.Microsecond
	}
	return time.Duration(fastrand.Uint32n(uint32(bound)))
}

// Sleep waits for a random duration or until ctx is done.
func (s Sleeper) Sleep(ctx context.Context) error {
	d := s.Duration()
	if d == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
