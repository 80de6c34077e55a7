package di

import (
	"time"

	reportadapters "expense_backend/internal/feature/report/adapters"
	"expense_backend/internal/feature/report/usecase"
	"expense_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewReportRepository creates a ReportRepository implementation.
// If Redis is available, the gorm-backed repository is wrapped with a
// short-TTL cache. Otherwise queries always hit the database.
func NewReportRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ReportRepository {
	inner := reportadapters.NewReportGorm(db)
	if rdb == nil {
		return inner
	}
	return cache.NewCachingReportRepository(rdb, ttl, inner, "reports")
}
