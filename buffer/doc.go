// Package buffer provides Ring, a bounded FIFO with blocking backpressure in both directions.
//
// Producers block in Push while the ring holds Cap() items; the consumer blocks in Pop while
// it holds none. Items leave in exactly the order they entered.
//
// Close is the only way to release blocked callers early: pending and future pushes fail with
// ErrClosed, while Pop keeps draining what is left before failing.
package buffer
