package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/memstore"
	"github.com/phrazzld/crudsuite/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is an in-memory Client.
type fakeClient struct {
	values   map[string]string
	getErr   error
	setCalls int
	lastTTL  time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: map[string]string{}}
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.setCalls++
	f.lastTTL = ttl
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

// countingStore counts calls to the wrapped store.
type countingStore struct {
	store.CategoryStore
	lists int
}

func (s *countingStore) List(ctx context.Context) ([]domain.Category, error) {
	s.lists++
	return s.CategoryStore.List(ctx)
}

func TestCategoryCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fills on miss and serves from cache", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		next := &countingStore{CategoryStore: memstore.NewCategoryStore(memstore.New())}
		c := NewCategoryCache(next, client, time.Minute, nil)

		first, err := c.List(ctx)
		require.NoError(t, err)
		second, err := c.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, next.lists)
		assert.Equal(t, 1, client.setCalls)
		assert.Equal(t, time.Minute, client.lastTTL)
	})

	t.Run("redis failure falls through", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		client.getErr = errors.New("connection refused")
		next := &countingStore{CategoryStore: memstore.NewCategoryStore(memstore.New())}
		c := NewCategoryCache(next, client, time.Minute, nil)

		categories, err := c.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 6)
		assert.Equal(t, 1, next.lists)
	})

	t.Run("corrupt entry is replaced", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		client.values[CategoriesKey] = "not json"
		c := NewCategoryCache(memstore.NewCategoryStore(memstore.New()), client, time.Minute, nil)

		categories, err := c.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 6)
		assert.NotEqual(t, "not json", client.values[CategoriesKey])
	})

	t.Run("get by id", func(t *testing.T) {
		t.Parallel()
		c := NewCategoryCache(memstore.NewCategoryStore(memstore.New()), newFakeClient(), time.Minute, nil)

		category, err := c.GetByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "History", category.Type)

		_, err = c.GetByID(ctx, 40)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})
}
