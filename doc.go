// Package seqpipe reassembles a fixed-size sequence of items, produced concurrently and in
// arbitrary order, into strictly ascending order.
//
// A Pipeline runs N producers and one consumer around a bounded ring buffer:
//
//	producer: claim seq from the source -> produce -> wait at the gate until seq is next
//	          -> push into the ring -> advance the gate
//	consumer: pop from the ring -> consume -> stop after the last sequence number
//
// The source (package source) hands every number in [0, Items) to exactly one producer.
// The gate (package gate) admits numbers into the ring one at a time, in order.
// The ring (package buffer) is FIFO and blocks producers while full and the consumer
// while empty. Together they guarantee the consumer sees 0, 1, ..., Items-1.
//
// Locks
// The source, the gate and the ring each own one mutex and no call path holds two of them.
//
// Errors
// There is no recoverable error path inside a run. Any failure (a produce/consume error,
// a panic, or a broken ordering invariant) stops the whole run: the gate and ring are
// closed, every goroutine unwinds, and Run returns the first failure tagged with the
// sequence number it concerns (see ExtractSeq and ExtractProducer).
//
// Defaults
//   - Items: 100
//   - Producers: 4
//   - Capacity: 8
//   - MaxDelay: 0 (no simulated latency)
//   - Source: the biased dispenser (source.NewBiased)
//   - Logger: disabled zerolog logger
//   - Metrics: no-op provider
package seqpipe
