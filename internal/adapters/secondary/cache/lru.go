package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"rental-price-service/internal/core/ports/output"
)

// LRUCache keeps recent predictions in process memory.
type LRUCache struct {
	items *expirable.LRU[string, float64]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewLRUCache bounds the cache to size entries; ttl of zero disables expiry.
func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	if size <= 0 {
		size = 1024
	}
	return &LRUCache{items: expirable.NewLRU[string, float64](size, nil, ttl)}
}

func (c *LRUCache) Get(ctx context.Context, key string) (float64, bool) {
	price, ok := c.items.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return price, ok
}

func (c *LRUCache) Set(ctx context.Context, key string, price float64) {
	c.items.Add(key, price)
}

func (c *LRUCache) Len() int {
	return c.items.Len()
}

// Stats reports hit and miss counts since construction.
func (c *LRUCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

var _ ports.PredictionCache = (*LRUCache)(nil)
