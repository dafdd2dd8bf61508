package seqpipe

import "github.com/ygrebnov/seqpipe/metrics"

// instruments are the metrics a pipeline records.
type instruments struct {
	claims   metrics.Counter
	parks    metrics.Counter
	gateWait metrics.Histogram
	produced metrics.Counter
	consumed metrics.Counter
	depth    metrics.UpDownCounter
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		claims: p.Counter(metrics.ClaimsTotal,
			metrics.WithDescription("sequence numbers handed out by the source"), metrics.WithUnit("1")),
		parks: p.Counter(metrics.GateParksTotal,
			metrics.WithDescription("producers that had to wait for their turn"), metrics.WithUnit("1")),
		gateWait: p.Histogram(metrics.GateWaitSeconds,
			metrics.WithDescription("time spent waiting for a turn at the gate"), metrics.WithUnit("seconds")),
		produced: p.Counter(metrics.ItemsProducedTotal,
			metrics.WithDescription("items pushed into the ring"), metrics.WithUnit("1")),
		consumed: p.Counter(metrics.ItemsConsumedTotal,
			metrics.WithDescription("items processed by the consumer"), metrics.WithUnit("1")),
		depth: p.UpDownCounter(metrics.BufferDepth,
			metrics.WithDescription("items currently buffered in the ring"), metrics.WithUnit("1")),
	}
}
