package fx

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RateCache stores locked rates for reuse between quotes.
type RateCache interface {
	Get(ctx context.Context, pair string) (decimal.Decimal, bool)
	Set(ctx context.Context, pair string, rate decimal.Decimal)
}

// CachedRateSource serves rates from a cache, falling through to the
// underlying source on miss. Cache failures degrade to the source.
type CachedRateSource struct {
	source RateSource
	cache  RateCache
}

func NewCachedRateSource(source RateSource, cache RateCache) *CachedRateSource {
	return &CachedRateSource{source: source, cache: cache}
}

func (c *CachedRateSource) Rate(ctx context.Context, pair string) (decimal.Decimal, error) {
	if rate, ok := c.cache.Get(ctx, pair); ok {
		return rate, nil
	}
	rate, err := c.source.Rate(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}
	c.cache.Set(ctx, pair, rate)
	return rate, nil
}

type memoryEntry struct {
	rate      decimal.Decimal
	expiresAt time.Time
}

// MemoryCache is the default in-process rate cache.
type MemoryCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(_ context.Context, pair string) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[pair]
	if !ok || time.Now().After(entry.expiresAt) {
		return decimal.Zero, false
	}
	return entry.rate, true
}

func (c *MemoryCache) Set(_ context.Context, pair string, rate decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[pair] = memoryEntry{rate: rate, expiresAt: time.Now().Add(c.ttl)}
}

// RedisCache shares locked rates across processes.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache builds a cache from a redis URL such as
// "redis://localhost:6379/0".
func NewRedisCache(url, prefix string, ttl time.Duration, logger *slog.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{
		client: redis.NewClient(opt),
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, pair string) (decimal.Decimal, bool) {
	val, err := c.client.Get(ctx, c.prefix+pair).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("fx: redis cache read failed", "pair", pair, "error", err)
		}
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false
	}
	return rate, true
}

func (c *RedisCache) Set(ctx context.Context, pair string, rate decimal.Decimal) {
	if err := c.client.Set(ctx, c.prefix+pair, rate.String(), c.ttl).Err(); err != nil {
		c.logger.Warn("fx: redis cache write failed", "pair", pair, "error", err)
	}
}
