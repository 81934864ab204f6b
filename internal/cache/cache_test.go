package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(0)
	c.StartCleanup(ctx)
	defer c.Close()

	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "positions", []byte(`[1,2]`), time.Minute))

	got, err := c.Get(ctx, "positions")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = c.Get(ctx, "positions")
	assert.ErrorIs(t, err, ErrMiss)

	c.sweep()
	assert.Empty(t, c.items)
}

func TestInMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(time.Hour)
	c.StartCleanup(ctx)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	c.StopCleanup()
	c.StopCleanup()
}

func TestInMemoryCacheCloseWithoutCleanup(t *testing.T) {
	c := NewInMemoryCache(time.Hour)

	closed := make(chan struct{})
	go func() {
		_ = c.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close blocked on a cache that never started cleanup")
	}

	// Starting after Close is a no-op.
	c.StartCleanup(context.Background())
}

func TestInMemoryCacheStartCleanupTwice(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(0)

	assert.NotPanics(t, func() {
		c.StartCleanup(ctx)
		c.StartCleanup(ctx)
	})
	require.NoError(t, c.Close())

	tick := NewInMemoryCache(time.Hour)
	tick.StartCleanup(ctx)
	tick.StartCleanup(ctx)
	require.NoError(t, tick.Close())
}
