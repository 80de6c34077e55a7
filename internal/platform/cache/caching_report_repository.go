// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"expense_backend/internal/feature/report/domain/entity"
	"expense_backend/internal/feature/report/usecase"
)

// CachingReportRepository decorates a ReportRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Entries expire after a short TTL,
// which bounds how stale a cached report can be after expense mutations.
type CachingReportRepository struct {
	inner     usecase.ReportRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingReportRepository decorates a ReportRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "reports".
func NewCachingReportRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ReportRepository, namespace string) *CachingReportRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "reports"
	}
	return &CachingReportRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Monthly retrieves the monthly summary, checking cache first then falling
// back to the database.
func (c *CachingReportRepository) Monthly(ctx context.Context, userID uint, year, month int) (*entity.MonthlyReport, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Monthly(ctx, userID, year, month)
	}

	key := c.cacheKey("monthly", userID, year, month)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.MonthlyReport
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Monthly(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// MonthlyByCategory retrieves the per-category breakdown, checking cache
// first then falling back to the database.
func (c *CachingReportRepository) MonthlyByCategory(ctx context.Context, userID uint, year, month int) ([]entity.CategorySummary, error) {
	if c.rdb == nil {
		return c.inner.MonthlyByCategory(ctx, userID, year, month)
	}

	key := c.cacheKey("by_category", userID, year, month)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.CategorySummary
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.MonthlyByCategory(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific report query.
func (c *CachingReportRepository) cacheKey(kind string, userID uint, year, month int) string {
	return fmt.Sprintf("%s:%s:%d:%04d-%02d", c.namespace, kind, userID, year, month)
}
