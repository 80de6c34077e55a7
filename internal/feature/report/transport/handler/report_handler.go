// Package handler はreportフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/report/domain/entity"
	"expense_backend/internal/feature/report/transport/http/dto"
	jwtmw "expense_backend/internal/platform/jwt"
)

// ReportUsecase は月次レポートのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ReportUsecase interface {
	Monthly(ctx context.Context, userID uint, year, month int) (*entity.MonthlyReport, error)
	MonthlyByCategory(ctx context.Context, userID uint, year, month int) ([]entity.CategorySummary, error)
}

// ReportHandler は月次レポートのHTTPリクエストを処理します。
type ReportHandler struct {
	uc ReportUsecase
}

// NewReportHandler は新しい ReportHandler を作成します。
func NewReportHandler(uc ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly は GET /reports/monthly?year=&month= を処理します。
// 支出のない月でも合計0.00・件数0のレポートを200で返します。
func (h *ReportHandler) Monthly(c *gin.Context) {
	var query dto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Warn("report query validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	userID := jwtmw.CurrentUserID(c)
	report, err := h.uc.Monthly(c.Request.Context(), userID, query.Year, query.Month)
	if err != nil {
		slog.Error("monthly report failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlyReportResp(report))
}

// MonthlyByCategory は GET /reports/monthly/by-category?year=&month= を処理します。
// 該当月に支出のあるカテゴリのみが返されます。
func (h *ReportHandler) MonthlyByCategory(c *gin.Context) {
	var query dto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Warn("report query validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	userID := jwtmw.CurrentUserID(c)
	summaries, err := h.uc.MonthlyByCategory(c.Request.Context(), userID, query.Year, query.Month)
	if err != nil {
		slog.Error("category report failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}
	out := make([]dto.CategorySummaryResp, 0, len(summaries))
	for i := range summaries {
		out = append(out, dto.NewCategorySummaryResp(&summaries[i]))
	}
	c.JSON(http.StatusOK, out)
}
