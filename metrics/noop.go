package metrics

// Noop discards every measurement.
type Noop struct{}

func (Noop) Counter(string, ...InstrumentOption) Counter             { return noop{} }
func (Noop) UpDownCounter(string, ...InstrumentOption) UpDownCounter { return noop{} }
func (Noop) Histogram(string, ...InstrumentOption) Histogram         { return noop{} }

type noop struct{}

func (noop) Add(int64)      {}
func (noop) Record(float64) {}
