package seqpipe_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ygrebnov/seqpipe"
)

// ExampleExtractSeq shows that one failing item aborts the whole run and
// the returned error names the sequence number that failed.
func ExampleExtractSeq() {
	errBadItem := errors.New("bad item")
	produce := func(_ context.Context, seq int) (int, error) {
		if seq == 3 {
			return 0, errBadItem
		}
		return seq, nil
	}

	_, err := seqpipe.RunAll[int](context.Background(), produce, seqpipe.WithItems(8))
	seq, _ := seqpipe.ExtractSeq(err)
	fmt.Println(errors.Is(err, errBadItem), seq)

	// Output: true 3
}
