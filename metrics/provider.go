// Package metrics defines the instruments a pipeline records into and two providers:
// Basic, an in-memory aggregator for tests and small programs, and Noop, the default.
package metrics

// Provider constructs named instruments. Implementations must be safe for concurrent use
// and return the same instrument for the same name.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records a level that moves both ways, such as buffer occupancy.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements, e.g. wait times in seconds.
type Histogram interface {
	Record(v float64)
}

// Instrument names recorded by a pipeline.
const (
	ClaimsTotal        = "seqpipe_claims_total"
	GateParksTotal     = "seqpipe_gate_parks_total"
	GateWaitSeconds    = "seqpipe_gate_wait_seconds"
	ItemsProducedTotal = "seqpipe_items_produced_total"
	ItemsConsumedTotal = "seqpipe_items_consumed_total"
	BufferDepth        = "seqpipe_buffer_depth"
)

// InstrumentConfig is advisory metadata; providers may ignore it.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets the instrument description.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets the instrument unit ("1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

func applyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
