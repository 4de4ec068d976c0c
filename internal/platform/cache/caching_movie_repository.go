// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
)

// CachingMovieRepository decorates a MovieRepository with Redis caching.
// Provider responses are immutable for our purposes, so both search pages and
// detail lookups are cached. All cache operations are best effort: a Redis
// failure never fails the request, it just falls through to the provider.
type CachingMovieRepository struct {
	inner     usecase.MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingMovieRepositoryがMovieRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MovieRepository = (*CachingMovieRepository)(nil)

// NewCachingMovieRepository decorates a MovieRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MovieRepository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search retrieves one search result page, checking cache first then falling
// back to the provider.
func (c *CachingMovieRepository) Search(ctx context.Context, title string, page int) (entity.SearchResult, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, title, page)
	}

	key := fmt.Sprintf("%s:search:%s:%d", c.namespace, title, page)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.SearchResult
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.Search(ctx, title, page)
	if err != nil {
		return entity.SearchResult{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Detail retrieves one movie's detail, checking cache first then falling back
// to the provider.
func (c *CachingMovieRepository) Detail(ctx context.Context, imdbID string) (entity.Movie, error) {
	if c.rdb == nil {
		return c.inner.Detail(ctx, imdbID)
	}

	key := fmt.Sprintf("%s:detail:%s", c.namespace, imdbID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Detail(ctx, imdbID)
	if err != nil {
		return entity.Movie{}, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
