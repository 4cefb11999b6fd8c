package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"rental-price-service/internal/core/ports/output"
)

const keyPrefix = "rental:prediction:"

// RedisCache shares predictions between replicas. Redis failures degrade
// to cache misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (float64, bool) {
	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		log.WithError(err).Warn("redis cache get failed")
		return 0, false
	}

	price, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func (c *RedisCache) Set(ctx context.Context, key string, price float64) {
	val := strconv.FormatFloat(price, 'g', -1, 64)
	if err := c.client.Set(ctx, keyPrefix+key, val, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("redis cache set failed")
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ ports.PredictionCache = (*RedisCache)(nil)
