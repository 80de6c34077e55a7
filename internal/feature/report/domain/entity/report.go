// Package entity defines the aggregate result types for the report feature.
package entity

import "github.com/shopspring/decimal"

// MonthlyReport is the aggregate of one user's expenses in one calendar month.
// A month with no expenses yields TotalExpenses 0.00 and ExpenseCount 0,
// never an absent result.
type MonthlyReport struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	ExpenseCount  int             `json:"expense_count"`
}

// CategorySummary is one row of the per-category monthly breakdown.
// Only categories with at least one matching expense produce a row.
type CategorySummary struct {
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ExpenseCount int             `json:"expense_count"`
}
