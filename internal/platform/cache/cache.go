// Package cache provides a Redis read-through cache for trivia categories.
// Categories are seeded once and never written through the API, which makes
// them safe to cache for a fixed TTL. Redis failures degrade to the wrapped
// store and are logged, never returned.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
	"github.com/redis/go-redis/v9"
)

// CategoriesKey is the Redis key holding the JSON-encoded category list.
const CategoriesKey = "crudsuite:categories"

// Client is the subset of the Redis client used by CategoryCache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// NewRedisClient parses url and verifies the server answers a PING.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return client, nil
}

// CategoryCache decorates a store.CategoryStore with Redis.
type CategoryCache struct {
	next   store.CategoryStore
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ store.CategoryStore = (*CategoryCache)(nil)

// NewCategoryCache wraps next. If logger is nil, a default logger will be used.
func NewCategoryCache(next store.CategoryStore, client Client, ttl time.Duration, logger *slog.Logger) *CategoryCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "category_cache")),
	}
}

// List returns the cached categories, filling the cache on a miss.
func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	raw, err := c.client.Get(ctx, CategoriesKey).Result()
	switch {
	case err == nil:
		var categories []domain.Category
		if jsonErr := json.Unmarshal([]byte(raw), &categories); jsonErr == nil {
			return categories, nil
		}
		log.Warn("discarding undecodable cached categories")
	case !errors.Is(err, redis.Nil):
		log.Warn("category cache read failed", slog.String("error", err.Error()))
	}

	categories, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(categories)
	if err == nil {
		err = c.client.Set(ctx, CategoriesKey, encoded, c.ttl).Err()
	}
	if err != nil {
		log.Warn("category cache write failed", slog.String("error", err.Error()))
	}
	return categories, nil
}

// GetByID looks the category up in the cached list.
func (c *CategoryCache) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	categories, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, store.ErrCategoryNotFound
}
