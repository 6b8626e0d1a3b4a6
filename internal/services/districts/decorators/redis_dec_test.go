package decorators_test

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/services/districts/decorators"
)

type stubResolver struct {
	result models.ResolveResult
	err    error
	calls  int
}

func (s *stubResolver) Resolve(
	_ context.Context,
	_ models.LookupRequest,
) (models.ResolveResult, error) {
	s.calls++
	return s.result, s.err
}

type memoryCache struct {
	entries map[string]models.ResolveResult
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]models.ResolveResult{}}
}

func (c *memoryCache) Set(_ context.Context, key string, value models.ResolveResult) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, out *models.ResolveResult) error {
	value, ok := c.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	*out = value
	return nil
}

func testLogger() *log.Logger {
	return log.New(log.Writer(), "test: ", 0)
}

func TestCachedResolver_SecondLookupServedFromCache(t *testing.T) {
	inner := &stubResolver{result: models.ResolveResult{
		Exact: []models.District{{Chamber: models.ChamberHouse, Code: "07", MatchType: models.MatchExact}},
	}}
	cached := decorators.NewCachedResolver(inner, newMemoryCache(), testLogger())

	req := models.LookupRequest{Zip: "82001"}
	first, err := cached.Resolve(context.Background(), req)
	require.NoError(t, err)

	second, err := cached.Resolve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedResolver_ErrorsNotCached(t *testing.T) {
	inner := &stubResolver{err: errors.New("resolver down")}
	cached := decorators.NewCachedResolver(inner, newMemoryCache(), testLogger())

	req := models.LookupRequest{Zip: "82001"}
	_, err := cached.Resolve(context.Background(), req)
	require.Error(t, err)

	_, err = cached.Resolve(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedResolver_CacheWriteFailureIsNonFatal(t *testing.T) {
	inner := &stubResolver{result: models.ResolveResult{Exact: []models.District{}}}
	cache := newMemoryCache()
	cache.setErr = errors.New("redis down")
	cached := decorators.NewCachedResolver(inner, cache, testLogger())

	_, err := cached.Resolve(context.Background(), models.LookupRequest{Zip: "82001"})
	assert.NoError(t, err)
}

func TestCachedResolver_DistinctInputsDistinctKeys(t *testing.T) {
	inner := &stubResolver{result: models.ResolveResult{Exact: []models.District{}}}
	cached := decorators.NewCachedResolver(inner, newMemoryCache(), testLogger())

	_, err := cached.Resolve(context.Background(), models.LookupRequest{Zip: "82001"})
	require.NoError(t, err)
	_, err = cached.Resolve(context.Background(), models.LookupRequest{Zip: "82601"})
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
