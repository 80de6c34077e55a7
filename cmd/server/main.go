package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"expense_backend/internal/app/di"
	"expense_backend/internal/app/router"
	authadapters "expense_backend/internal/feature/auth/adapters"
	authhandler "expense_backend/internal/feature/auth/transport/handler"
	authusecase "expense_backend/internal/feature/auth/usecase"
	categoryadapters "expense_backend/internal/feature/category/adapters"
	categoryhandler "expense_backend/internal/feature/category/transport/handler"
	categoryusecase "expense_backend/internal/feature/category/usecase"
	expenseadapters "expense_backend/internal/feature/expense/adapters"
	expensehandler "expense_backend/internal/feature/expense/transport/handler"
	expenseusecase "expense_backend/internal/feature/expense/usecase"
	reporthandler "expense_backend/internal/feature/report/transport/handler"
	reportusecase "expense_backend/internal/feature/report/usecase"
	"expense_backend/internal/platform/config"
	platformdb "expense_backend/internal/platform/db"
	platformjwt "expense_backend/internal/platform/jwt"
	platformredis "expense_backend/internal/platform/redis"
)

func main() {
	// .env（開発用、存在しなければ無視）
	_ = godotenv.Load()

	// 設定は起動時に一度だけ読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// db
	db := platformdb.OpenDB(cfg.RunMigrations)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without report cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	categoryRepo := categoryadapters.NewCategoryGorm(db)
	expenseRepo := expenseadapters.NewExpenseGorm(db)
	reportRepo := di.NewReportRepository(rdb, db, cfg.ReportCacheTTL)

	// Usecase
	jwtGen := platformjwt.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)
	expenseUC := expenseusecase.NewExpenseUsecase(expenseRepo, categoryRepo)
	reportUC := reportusecase.NewReportUsecase(reportRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	categoryH := categoryhandler.NewCategoryHandler(categoryUC)
	expenseH := expensehandler.NewExpenseHandler(expenseUC)
	reportH := reporthandler.NewReportHandler(reportUC)

	// ルータ生成
	r := router.NewRouter(cfg.JWTSecret, authUC, authH, categoryH, expenseH, reportH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
