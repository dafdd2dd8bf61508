package seqpipe_test

import (
	"context"
	"fmt"

	"github.com/ygrebnov/seqpipe"
	"github.com/ygrebnov/seqpipe/metrics"
)

// ExampleWithMetrics records pipeline instruments into an in-memory provider.
func ExampleWithMetrics() {
	m := metrics.NewBasic()

	_, err := seqpipe.RunAll[int](context.Background(), seqpipe.Identity,
		seqpipe.WithItems(50),
		seqpipe.WithMetrics(m),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("claimed:", m.CounterValue(metrics.ClaimsTotal))
	fmt.Println("consumed:", m.CounterValue(metrics.ItemsConsumedTotal))
	fmt.Println("buffered at end:", m.UpDownValue(metrics.BufferDepth))

	// Output:
	// claimed: 50
	// consumed: 50
	// buffered at end: 0
}
