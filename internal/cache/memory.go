package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// InMemoryCache is a process-local Backend with a background sweeper.
type InMemoryCache struct {
	mu          sync.RWMutex
	items       map[string]entry
	cleanupFreq time.Duration
	now         func() time.Time

	stop    chan struct{}
	done    chan struct{}
	started sync.Once
	stopped sync.Once
}

func NewInMemoryCache(cleanupFreq time.Duration) *InMemoryCache {
	return &InMemoryCache{
		items:       make(map[string]entry),
		cleanupFreq: cleanupFreq,
		now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// StartCleanup sweeps expired entries until ctx is done or StopCleanup is
// called. Only the first call starts a sweeper.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	c.started.Do(func() {
		if c.cleanupFreq <= 0 {
			close(c.done)
			return
		}
		go c.cleanup(ctx)
	})
}

func (c *InMemoryCache) cleanup(ctx context.Context) {
	defer close(c.done)
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// StopCleanup stops the sweeper and waits for it to exit. A cache that never
// started one is marked done so later StartCleanup calls are no-ops.
func (c *InMemoryCache) StopCleanup() {
	c.started.Do(func() {
		close(c.done)
	})
	c.stopped.Do(func() {
		close(c.stop)
	})
	<-c.done
}

func (c *InMemoryCache) sweep() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
}

func (c *InMemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return nil, ErrMiss
	}
	return e.value, nil
}

func (c *InMemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.items[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Close() error {
	c.StopCleanup()
	return nil
}
