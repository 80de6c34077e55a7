// Package dto defines data transfer objects for the expense feature's HTTP transport layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"expense_backend/internal/feature/expense/domain/entity"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// CreateExpenseReq represents the request body for POST /expenses.
// Amount accepts both JSON numbers and strings; precision is validated
// in the usecase, not here.
type CreateExpenseReq struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
	CategoryID  uint            `json:"category_id" binding:"required"`
}

// UpdateExpenseReq represents the request body for PATCH /expenses/:id.
// Nil fields are left untouched (partial update).
type UpdateExpenseReq struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description" binding:"omitempty,min=1,max=500"`
	CategoryID  *uint            `json:"category_id" binding:"omitempty"`
}

// ListExpensesQuery represents the query parameters for GET /expenses.
type ListExpensesQuery struct {
	FromDate   *string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate     *string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID *uint   `form:"category_id" binding:"omitempty"`
}

// ExpenseResp represents an expense in API responses.
// Amount is rendered with exactly two fractional digits.
type ExpenseResp struct {
	ID          uint      `json:"id"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CategoryID  uint      `json:"category_id"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewExpenseResp converts an expense entity to its wire representation.
func NewExpenseResp(e *entity.Expense) ExpenseResp {
	return ExpenseResp{
		ID:          e.ID,
		Amount:      e.Amount.StringFixed(2),
		Date:        e.Date.UTC().Format(DateLayout),
		Description: e.Description,
		CategoryID:  e.CategoryID,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
	}
}
