// Package dto defines data transfer objects for the report feature's HTTP transport layer.
package dto

import (
	"expense_backend/internal/feature/report/domain/entity"
)

// MonthQuery represents the query parameters for the monthly report endpoints.
// Year and month bounds match the supported reporting range.
type MonthQuery struct {
	Year  int `form:"year" binding:"required,gte=2000,lte=2100"`
	Month int `form:"month" binding:"required,gte=1,lte=12"`
}

// MonthlyReportResp represents the monthly summary in API responses.
// Monetary totals carry exactly two fractional digits.
type MonthlyReportResp struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	TotalExpenses string `json:"total_expenses"`
	ExpenseCount  int    `json:"expense_count"`
}

// CategorySummaryResp represents one category row of the monthly breakdown.
type CategorySummaryResp struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	TotalAmount  string `json:"total_amount"`
	ExpenseCount int    `json:"expense_count"`
}

// NewMonthlyReportResp converts a monthly report to its wire representation.
func NewMonthlyReportResp(r *entity.MonthlyReport) MonthlyReportResp {
	return MonthlyReportResp{
		Year:          r.Year,
		Month:         r.Month,
		TotalExpenses: r.TotalExpenses.StringFixed(2),
		ExpenseCount:  r.ExpenseCount,
	}
}

// NewCategorySummaryResp converts a category summary to its wire representation.
func NewCategorySummaryResp(s *entity.CategorySummary) CategorySummaryResp {
	return CategorySummaryResp{
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		TotalAmount:  s.TotalAmount.StringFixed(2),
		ExpenseCount: s.ExpenseCount,
	}
}
