package seqpipe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/seqpipe"
)

func TestRunStream_InOrder(t *testing.T) {
	values, errs, err := seqpipe.RunStream[int](context.Background(), seqpipe.Identity,
		seqpipe.WithItems(1000), seqpipe.WithProducers(6), seqpipe.WithCapacity(3))
	require.NoError(t, err)

	got := make([]int, 0, 1000)
	for v := range values {
		got = append(got, v)
	}
	require.Equal(t, ascending(1000), got)

	err, open := <-errs
	require.False(t, open, "errs must be closed without a value on success")
	require.NoError(t, err)
}

func TestRunStream_InvalidOptions(t *testing.T) {
	values, errs, err := seqpipe.RunStream[int](context.Background(), seqpipe.Identity, seqpipe.WithCapacity(0))
	require.ErrorIs(t, err, seqpipe.ErrInvalidConfig)
	require.Nil(t, values)
	require.Nil(t, errs)
}

func TestRunStream_ErrorDelivered(t *testing.T) {
	boom := errors.New("boom")
	produce := func(_ context.Context, seq int) (int, error) {
		if seq == 20 {
			return 0, boom
		}
		return seq, nil
	}

	values, errs, err := seqpipe.RunStream[int](context.Background(), produce, seqpipe.WithItems(100))
	require.NoError(t, err)

	n := 0
	for v := range values {
		require.Equal(t, n, v)
		n++
	}
	require.LessOrEqual(t, n, 20)

	select {
	case err := <-errs:
		require.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for stream error")
	}
}

func TestRunStream_AbandonedReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	values, errs, err := seqpipe.RunStream[int](ctx, seqpipe.Identity, seqpipe.WithItems(1000))
	require.NoError(t, err)

	require.Equal(t, 0, <-values)
	cancel()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatalf("stream did not stop after cancel")
	}
}
