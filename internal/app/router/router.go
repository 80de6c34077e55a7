package router

import (
	authhandler "expense_backend/internal/feature/auth/transport/handler"
	categoryhandler "expense_backend/internal/feature/category/transport/handler"
	expensehandler "expense_backend/internal/feature/expense/transport/handler"
	reporthandler "expense_backend/internal/feature/report/transport/handler"
	"expense_backend/internal/platform/http/handler"
	jwtmw "expense_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(jwtSecret string, users jwtmw.UserLookup,
	auth *authhandler.AuthHandler, categories *categoryhandler.CategoryHandler,
	expenses *expensehandler.ExpenseHandler, reports *reporthandler.ReportHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/auth/register", auth.Register)
	// ログイン（JWT 発行）
	r.POST("/auth/login", auth.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(jwtSecret, users))
	{
		protected.POST("/categories", categories.Create)
		protected.GET("/categories", categories.List)
		protected.GET("/categories/:id", categories.Get)
		protected.PATCH("/categories/:id", categories.Update)
		protected.DELETE("/categories/:id", categories.Delete)

		protected.POST("/expenses", expenses.Create)
		protected.GET("/expenses", expenses.List)
		protected.GET("/expenses/:id", expenses.Get)
		protected.PATCH("/expenses/:id", expenses.Update)
		protected.DELETE("/expenses/:id", expenses.Delete)

		protected.GET("/reports/monthly", reports.Monthly)
		protected.GET("/reports/monthly/by-category", reports.MonthlyByCategory)
	}

	return r
}
