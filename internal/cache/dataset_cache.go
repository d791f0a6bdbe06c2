package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

const keyPrefix = "dataset:"

// DatasetCache is a Redis-backed cache of derived dataset projections
// (the "full dataset" views that the read API serves). Ownership is
// explicit: the sync engine invalidates after each successful run and
// may pre-warm; nothing here is process-lifetime state.
type DatasetCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// NewDatasetCache creates a dataset cache from a Redis URL
func NewDatasetCache(cfg *domain.CacheConfig, logger *logrus.Logger) (*DatasetCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	return &DatasetCache{
		client: client,
		ttl:    cfg.DefaultTTL,
		log:    logger,
	}, nil
}

// Invalidate drops the cached projections for the named datasets
func (c *DatasetCache) Invalidate(ctx context.Context, datasets ...string) error {
	if len(datasets) == 0 {
		return nil
	}

	keys := make([]string, len(datasets))
	for i, d := range datasets {
		keys[i] = keyPrefix + d
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidating dataset cache: %w", err)
	}

	c.log.WithField("datasets", datasets).Info("Dataset cache invalidated")
	return nil
}

// Put pre-warms a projection after a successful run
func (c *DatasetCache) Put(ctx context.Context, dataset string, payload []byte) error {
	if err := c.client.Set(ctx, keyPrefix+dataset, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching dataset %q: %w", dataset, err)
	}
	return nil
}

// Get returns a cached projection, or domain.ErrNotFound on a miss
func (c *DatasetCache) Get(ctx context.Context, dataset string) ([]byte, error) {
	payload, err := c.client.Get(ctx, keyPrefix+dataset).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("dataset %q: %w", dataset, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading dataset cache %q: %w", dataset, err)
	}
	return payload, nil
}

// Close releases the Redis client
func (c *DatasetCache) Close() error {
	return c.client.Close()
}
