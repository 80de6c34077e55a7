// Package handler はexpenseフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/expense/domain/entity"
	"expense_backend/internal/feature/expense/transport/http/dto"
	"expense_backend/internal/feature/expense/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// ExpenseUsecase は支出操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ExpenseUsecase interface {
	Create(ctx context.Context, userID uint, input usecase.CreateExpenseInput) (*entity.Expense, error)
	ListForUser(ctx context.Context, userID uint, filter usecase.ListFilter) ([]entity.Expense, error)
	FindOwned(ctx context.Context, expenseID, userID uint) (*entity.Expense, error)
	Update(ctx context.Context, expenseID, userID uint, input usecase.UpdateExpenseInput) (*entity.Expense, error)
	Delete(ctx context.Context, expenseID, userID uint) error
}

// ExpenseHandler は支出のHTTPリクエストを処理します。
type ExpenseHandler struct {
	uc ExpenseUsecase
}

// NewExpenseHandler は新しい ExpenseHandler を作成します。
func NewExpenseHandler(uc ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create は POST /expenses を処理します。
// 金額・カテゴリ参照の検証エラーはどちらも400で返します。
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("expense validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	date, _ := time.Parse(dto.DateLayout, req.Date) // already validated by binding

	userID := jwtmw.CurrentUserID(c)
	expense, err := h.uc.Create(c.Request.Context(), userID, usecase.CreateExpenseInput{
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondExpenseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewExpenseResp(expense))
}

// List は GET /expenses を処理します。
// from_date・to_date・category_idの絞り込みはAND結合されます。
func (h *ExpenseHandler) List(c *gin.Context) {
	var query dto.ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Warn("expense query validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var filter usecase.ListFilter
	if query.FromDate != nil {
		d, _ := time.Parse(dto.DateLayout, *query.FromDate)
		filter.From = &d
	}
	if query.ToDate != nil {
		d, _ := time.Parse(dto.DateLayout, *query.ToDate)
		filter.To = &d
	}
	filter.CategoryID = query.CategoryID

	userID := jwtmw.CurrentUserID(c)
	expenses, err := h.uc.ListForUser(c.Request.Context(), userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list expenses"})
		return
	}
	out := make([]dto.ExpenseResp, 0, len(expenses))
	for i := range expenses {
		out = append(out, dto.NewExpenseResp(&expenses[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /expenses/:id を処理します。
// 支出が存在しない場合は404、別ユーザーの所有の場合は403を返します。
func (h *ExpenseHandler) Get(c *gin.Context) {
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	userID := jwtmw.CurrentUserID(c)
	expense, err := h.uc.FindOwned(c.Request.Context(), expenseID, userID)
	if err != nil {
		respondExpenseError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewExpenseResp(expense))
}

// Update は PATCH /expenses/:id を処理します。
// リクエストに含まれるフィールドのみ更新されます。
func (h *ExpenseHandler) Update(c *gin.Context) {
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("expense validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	input := usecase.UpdateExpenseInput{
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Date != nil {
		d, _ := time.Parse(dto.DateLayout, *req.Date)
		input.Date = &d
	}

	userID := jwtmw.CurrentUserID(c)
	expense, err := h.uc.Update(c.Request.Context(), expenseID, userID, input)
	if err != nil {
		respondExpenseError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewExpenseResp(expense))
}

// Delete は DELETE /expenses/:id を処理します。
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	userID := jwtmw.CurrentUserID(c)
	if err := h.uc.Delete(c.Request.Context(), expenseID, userID); err != nil {
		respondExpenseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID は:idパスパラメータを解析します。不正な場合は400を返します。
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondExpenseError はユースケースのエラーをHTTPステータスに変換します。
// ErrCategoryInvalidは404/403に分割せず、単一の400として返します（意図的な仕様）。
func respondExpenseError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{validationErr.Field: validationErr.Message},
		})
	case errors.Is(err, usecase.ErrCategoryInvalid):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrCategoryInvalid.Error()})
	case errors.Is(err, usecase.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrExpenseNotFound.Error()})
	case errors.Is(err, usecase.ErrExpenseForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: usecase.ErrExpenseForbidden.Error()})
	default:
		slog.Error("expense operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
