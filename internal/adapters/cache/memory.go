package cache

import (
	"context"
	"sync"

	"conferencecentral/internal/domain"
)

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache returns an in-process Cache for development and tests.
func NewMemoryCache() domain.Cache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}
