package buffer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		r, err := New[int](c)
		require.ErrorIs(t, err, ErrInvalidCapacity)
		require.Nil(t, r)
	}
}

// Sequential push/pop with wraparound keeps FIFO order.
func TestRing_Sequential(t *testing.T) {
	const (
		capacity = 4
		N        = 1000
	)
	r, err := New[int](capacity)
	require.NoError(t, err)

	next := 0
	for i := 0; i < N; i++ {
		ok, err := r.TryPush(i)
		require.NoError(t, err)
		if !ok {
			// full: drain one and retry
			v, ok, err := r.TryPop()
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, next, v, "FIFO violated")
			next++
			ok, err = r.TryPush(i)
			require.NoError(t, err)
			require.True(t, ok)
		}
		require.LessOrEqual(t, r.Len(), capacity)
	}
	for r.Len() > 0 {
		v, err := r.Pop()
		require.NoError(t, err)
		require.Equal(t, next, v, "FIFO violated")
		next++
	}
	require.Equal(t, N, next)

	st := r.Stats()
	assert.Equal(t, uint64(N), st.Pushes)
	assert.Equal(t, uint64(N), st.Pops)
	assert.Equal(t, capacity, st.Peak)
}

func TestRing_CapacityOverflow(t *testing.T) {
	const capacity = 8
	r, err := New[int](capacity)
	require.NoError(t, err)

	for i := 0; i < capacity; i++ {
		ok, err := r.TryPush(i)
		require.NoError(t, err)
		require.True(t, ok, "push %d failed (ring unexpectedly full)", i)
	}
	ok, err := r.TryPush(999)
	require.NoError(t, err)
	require.False(t, ok, "expected overflow")
	require.Equal(t, capacity, r.Cap())
}

func TestRing_PushBlocksWhileFull(t *testing.T) {
	r, err := New[int](1)
	require.NoError(t, err)
	require.NoError(t, r.Push(1))

	pushed := make(chan error, 1)
	go func() { pushed <- r.Push(2) }()

	select {
	case <-pushed:
		t.Fatalf("Push should block while the ring is full")
	case <-time.After(50 * time.Millisecond):
	}

	v, err := r.Pop()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	select {
	case err := <-pushed:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatalf("blocked Push did not resume after Pop")
	}
	require.Equal(t, uint64(1), r.Stats().FullWaits)
}

func TestRing_PopBlocksWhileEmpty(t *testing.T) {
	r, err := New[string](2)
	require.NoError(t, err)

	got := make(chan string, 1)
	go func() {
		v, err := r.Pop()
		if err != nil {
			t.Errorf("Pop: %v", err)
		}
		got <- v
	}()

	select {
	case <-got:
		t.Fatalf("Pop should block while the ring is empty")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, r.Push("a"))
	select {
	case v := <-got:
		require.Equal(t, "a", v)
	case <-time.After(time.Second):
		t.Fatalf("blocked Pop did not resume after Push")
	}
}

func TestRing_Close(t *testing.T) {
	r, err := New[int](1)
	require.NoError(t, err)
	require.NoError(t, r.Push(7))

	blocked := make(chan error, 1)
	go func() { blocked <- r.Push(8) }()
	time.Sleep(20 * time.Millisecond)

	r.Close()
	r.Close()

	select {
	case err := <-blocked:
		require.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatalf("Close did not release blocked Push")
	}

	// remaining item is still drained, then ErrClosed
	v, err := r.Pop()
	require.NoError(t, err)
	require.Equal(t, 7, v)
	_, err = r.Pop()
	require.ErrorIs(t, err, ErrClosed)

	_, err = r.TryPush(1)
	require.ErrorIs(t, err, ErrClosed)
	_, _, err = r.TryPop()
	require.ErrorIs(t, err, ErrClosed)
}

// Many producers, one consumer: every value appears exactly once and occupancy never exceeds capacity.
func TestRing_Concurrent(t *testing.T) {
	const (
		capacity    = 16
		producers   = 8
		perProducer = 5000
		N           = producers * perProducer
	)
	r, err := New[int](capacity)
	require.NoError(t, err)

	var over atomic.Bool
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := r.Push(base + i); err != nil {
					t.Errorf("Push: %v", err)
					return
				}
				if r.Len() > capacity {
					over.Store(true)
				}
			}
		}(p * perProducer)
	}

	seen := make([]bool, N)
	lastPerProducer := make([]int, producers)
	for i := range lastPerProducer {
		lastPerProducer[i] = -1
	}
	for i := 0; i < N; i++ {
		v, err := r.Pop()
		require.NoError(t, err)
		require.False(t, seen[v], "duplicate value %d", v)
		seen[v] = true

		// per-producer order is preserved by FIFO
		p := v / perProducer
		require.Greater(t, v, lastPerProducer[p])
		lastPerProducer[p] = v
	}
	wg.Wait()

	require.False(t, over.Load(), "ring exceeded capacity")
	require.LessOrEqual(t, r.Stats().Peak, capacity)
	require.Zero(t, r.Len())
}
