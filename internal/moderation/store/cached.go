package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"localdir/internal/moderation/metrics"
	"localdir/internal/moderation/models"
)

const (
	countKeyPrefix      = "localdir:moderation:count:"
	generationKeyPrefix = "localdir:moderation:countgen:"
)

// Store is the full entity store surface the cache decorates.
type Store interface {
	FindByID(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error)
	UpdateStatus(ctx context.Context, entityType models.EntityType, id string, from, to models.Status, now time.Time) (*models.Entity, error)
	List(ctx context.Context, entityType models.EntityType, query models.ListQuery) ([]*models.Entity, error)
	CountByStatus(ctx context.Context, entityType models.EntityType, status models.Status) (int, error)
}

// Cached serves status counts from Redis and delegates everything else.
// Cache failures fall through to the inner store.
//
// Count keys embed a per-variant generation number. InvalidateCounts bumps the
// generation instead of deleting keys, so a reader that loaded a count before
// a transition writes it under the old generation, where no later reader
// looks. Old generations expire with the TTL.
type Cached struct {
	Store
	client  redis.UniversalClient
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewCached(inner Store, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *Cached {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cached{Store: inner, client: client, ttl: ttl, logger: logger, metrics: m}
}

func countKey(entityType models.EntityType, generation int64, status models.Status) string {
	return countKeyPrefix + string(entityType) + ":" + strconv.FormatInt(generation, 10) + ":" + string(status)
}

func generationKey(entityType models.EntityType) string {
	return generationKeyPrefix + string(entityType)
}

func (c *Cached) generation(ctx context.Context, entityType models.EntityType) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(entityType)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *Cached) CountByStatus(ctx context.Context, entityType models.EntityType, status models.Status) (int, error) {
	gen, err := c.generation(ctx, entityType)
	if err != nil {
		c.logger.WarnContext(ctx, "count cache generation read failed", "entity_type", entityType, "error", err)
		c.metrics.IncrementCacheMiss()
		return c.Store.CountByStatus(ctx, entityType, status)
	}
	key := countKey(entityType, gen, status)

	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			c.metrics.IncrementCacheHit()
			return n, nil
		}
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "count cache read failed", "key", key, "error", err)
	}
	c.metrics.IncrementCacheMiss()

	n, err := c.Store.CountByStatus(ctx, entityType, status)
	if err != nil {
		return 0, err
	}
	if err := c.client.Set(ctx, key, n, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "count cache write failed", "key", key, "error", err)
	}
	return n, nil
}

// InvalidateCounts retires every cached count for the variant.
func (c *Cached) InvalidateCounts(ctx context.Context, entityType models.EntityType) error {
	if err := c.client.Incr(ctx, generationKey(entityType)).Err(); err != nil {
		return fmt.Errorf("invalidate %s counts: %w", entityType, err)
	}
	return nil
}
