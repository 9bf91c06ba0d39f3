package closer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClose_LIFOOrder(t *testing.T) {
	cl := NewCloser(time.Second)

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		cl.Add(func(context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, cl.Close(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestClose_CollectsErrors(t *testing.T) {
	cl := NewCloser(time.Second)

	cl.Add(func(context.Context) error { return errors.New("redis: connection reset") })
	cl.Add(func(context.Context) error { return nil })
	cl.Add(func(context.Context) error { return errors.New("kafka: writer closed") })

	err := cl.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka: writer closed")
	assert.Contains(t, err.Error(), "redis: connection reset")
}

func TestClose_RunsOnce(t *testing.T) {
	cl := NewCloser(time.Second)

	var calls int
	cl.Add(func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, cl.Close(context.Background()))
	require.NoError(t, cl.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestClose_ForcesRemainingOnCancelledContext(t *testing.T) {
	cl := NewCloser(time.Second)

	var calls atomic.Int32
	cl.Add(func(context.Context) error {
		// Достаточно медленно, чтобы отменённый контекст сработал первым
		time.Sleep(20 * time.Millisecond)
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cl.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}
