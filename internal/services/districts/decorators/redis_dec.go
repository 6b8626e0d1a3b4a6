package decorators

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

type resolverService interface {
	Resolve(ctx context.Context, req models.LookupRequest) (models.ResolveResult, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string, returnValue *T) error
}

// CachedResolver caches successful resolutions. District data is immutable
// for a legislative session, so staleness is bounded by the entry TTL.
type CachedResolver struct {
	inner  resolverService
	cache  cacheClient[models.ResolveResult]
	logger *log.Logger
}

func NewCachedResolver(
	inner resolverService,
	cache cacheClient[models.ResolveResult],
	logger *log.Logger,
) *CachedResolver {
	return &CachedResolver{inner: inner, cache: cache, logger: logger}
}

func (s *CachedResolver) Resolve(
	ctx context.Context,
	req models.LookupRequest,
) (models.ResolveResult, error) {
	key := cacheKey(req)
	var result models.ResolveResult

	if err := s.cache.Get(ctx, key, &result); err == nil {
		s.logger.Printf("cache hit for %s", key)
		return result, nil
	}

	s.logger.Printf("cache miss for %s", key)
	result, err := s.inner.Resolve(ctx, req)
	if err != nil {
		return models.ResolveResult{}, err
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		s.logger.Printf("cache error for %s: %v", key, err)
	}

	return result, nil
}

func cacheKey(req models.LookupRequest) string {
	return fmt.Sprintf("lookup:%s:%s", req.Zip, strings.ToLower(strings.TrimSpace(req.Address)))
}
