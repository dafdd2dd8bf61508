package metrics

import (
	"sync"
	"sync/atomic"
)

// Basic keeps every instrument in memory, keyed by name.
type Basic struct {
	mu         sync.Mutex
	counters   map[string]*BasicCounter
	updowns    map[string]*BasicUpDownCounter
	histograms map[string]*BasicHistogram
	meta       map[string]InstrumentConfig
}

// NewBasic returns an empty in-memory provider.
func NewBasic() *Basic {
	return &Basic{
		counters:   make(map[string]*BasicCounter),
		updowns:    make(map[string]*BasicUpDownCounter),
		histograms: make(map[string]*BasicHistogram),
		meta:       make(map[string]InstrumentConfig),
	}
}

// lookup returns m[name], creating it with newFn on first use. Caller holds b.mu.
func lookup[I any](b *Basic, m map[string]*I, name string, opts []InstrumentOption, newFn func() *I) *I {
	if v, ok := m[name]; ok {
		return v
	}
	v := newFn()
	m[name] = v
	b.meta[name] = applyOptions(opts)
	return v
}

func (b *Basic) Counter(name string, opts ...InstrumentOption) Counter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lookup(b, b.counters, name, opts, func() *BasicCounter { return &BasicCounter{} })
}

func (b *Basic) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lookup(b, b.updowns, name, opts, func() *BasicUpDownCounter { return &BasicUpDownCounter{} })
}

func (b *Basic) Histogram(name string, opts ...InstrumentOption) Histogram {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lookup(b, b.histograms, name, opts, func() *BasicHistogram { return &BasicHistogram{} })
}

// Describe returns the metadata an instrument was created with.
func (b *Basic) Describe(name string) (InstrumentConfig, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.meta[name]
	return c, ok
}

// CounterValue returns the current value of the named counter, 0 if it does not exist.
func (b *Basic) CounterValue(name string) int64 {
	b.mu.Lock()
	c, ok := b.counters[name]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	return c.Snapshot()
}

// UpDownValue returns the current level of the named up/down counter, 0 if it does not exist.
func (b *Basic) UpDownValue(name string) int64 {
	b.mu.Lock()
	u, ok := b.updowns[name]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	return u.Snapshot()
}

// HistogramValue returns a snapshot of the named histogram.
func (b *Basic) HistogramValue(name string) HistSnapshot {
	b.mu.Lock()
	h, ok := b.histograms[name]
	b.mu.Unlock()
	if !ok {
		return HistSnapshot{}
	}
	return h.Snapshot()
}

type BasicCounter struct{ val atomic.Int64 }

func (c *BasicCounter) Add(n int64)     { c.val.Add(n) }
func (c *BasicCounter) Snapshot() int64 { return c.val.Load() }

// BasicUpDownCounter also tracks the highest level it reached.
type BasicUpDownCounter struct {
	val  atomic.Int64
	peak atomic.Int64
}

func (u *BasicUpDownCounter) Add(n int64) {
	v := u.val.Add(n)
	for {
		p := u.peak.Load()
		if v <= p || u.peak.CompareAndSwap(p, v) {
			return
		}
	}
}

func (u *BasicUpDownCounter) Snapshot() int64 { return u.val.Load() }
func (u *BasicUpDownCounter) Peak() int64     { return u.peak.Load() }

// BasicHistogram tracks count, sum, min and max; no buckets.
type BasicHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 || v < h.min {
		h.min = v
	}
	if h.count == 0 || v > h.max {
		h.max = v
	}
	h.count++
	h.sum += v
}

type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := HistSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
	if h.count > 0 {
		s.Mean = h.sum / float64(h.count)
	}
	return s
}
