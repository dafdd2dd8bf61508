package seqpipe

import (
	"sync"
)

// lifecycleCoordinator releases every goroutine blocked inside a run.
// It doesn't own the gate or the ring; it closes them in a fixed order, once.
//
// Close() is safe for concurrent calls; the sequence executes exactly once.
type lifecycleCoordinator struct {
	closeGate func()
	closeRing func()
	onClosed  func()

	once sync.Once
}

func newLifecycleCoordinator(closeGate, closeRing, onClosed func()) *lifecycleCoordinator {
	return &lifecycleCoordinator{
		closeGate: closeGate,
		closeRing: closeRing,
		onClosed:  onClosed,
	}
}

// Close executes the shutdown sequence exactly once:
// 1) close the gate so parked producers return instead of pushing
// 2) close the ring so blocked pushes and the consumer's pop return
// 3) notify the owner
func (lc *lifecycleCoordinator) Close() {
	lc.once.Do(func() {
		if lc.closeGate != nil {
			lc.closeGate()
		}
		if lc.closeRing != nil {
			lc.closeRing()
		}
		if lc.onClosed != nil {
			lc.onClosed()
		}
	})
}
