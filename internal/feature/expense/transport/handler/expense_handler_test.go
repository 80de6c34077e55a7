package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"expense_backend/internal/feature/expense/domain/entity"
	"expense_backend/internal/feature/expense/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// mockExpenseUsecase is a mock implementation of the ExpenseUsecase interface.
type mockExpenseUsecase struct {
	CreateFunc      func(ctx context.Context, userID uint, input usecase.CreateExpenseInput) (*entity.Expense, error)
	ListForUserFunc func(ctx context.Context, userID uint, filter usecase.ListFilter) ([]entity.Expense, error)
	FindOwnedFunc   func(ctx context.Context, expenseID, userID uint) (*entity.Expense, error)
	UpdateFunc      func(ctx context.Context, expenseID, userID uint, input usecase.UpdateExpenseInput) (*entity.Expense, error)
	DeleteFunc      func(ctx context.Context, expenseID, userID uint) error
}

func (m *mockExpenseUsecase) Create(ctx context.Context, userID uint, input usecase.CreateExpenseInput) (*entity.Expense, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, input)
	}
	return &entity.Expense{
		ID:          1,
		Amount:      input.Amount.Round(2),
		Date:        input.Date,
		Description: input.Description,
		UserID:      userID,
		CategoryID:  input.CategoryID,
	}, nil
}

func (m *mockExpenseUsecase) ListForUser(ctx context.Context, userID uint, filter usecase.ListFilter) ([]entity.Expense, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID, filter)
	}
	return []entity.Expense{}, nil
}

func (m *mockExpenseUsecase) FindOwned(ctx context.Context, expenseID, userID uint) (*entity.Expense, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, expenseID, userID)
	}
	return nil, usecase.ErrExpenseNotFound
}

func (m *mockExpenseUsecase) Update(ctx context.Context, expenseID, userID uint, input usecase.UpdateExpenseInput) (*entity.Expense, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expenseID, userID, input)
	}
	return nil, usecase.ErrExpenseNotFound
}

func (m *mockExpenseUsecase) Delete(ctx context.Context, expenseID, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, expenseID, userID)
	}
	return usecase.ErrExpenseNotFound
}

// setupRouter wires the handler behind a stub that injects user ID 1,
// standing in for the JWT middleware.
func setupRouter(uc ExpenseUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(1))
		c.Next()
	})
	h := NewExpenseHandler(uc)
	r.POST("/expenses", h.Create)
	r.GET("/expenses", h.List)
	r.GET("/expenses/:id", h.Get)
	r.PATCH("/expenses/:id", h.Update)
	r.DELETE("/expenses/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExpenseHandler_Create(t *testing.T) {
	t.Run("successful creation renders a fixed-point amount", func(t *testing.T) {
		r := setupRouter(&mockExpenseUsecase{})

		w := doJSON(r, http.MethodPost, "/expenses",
			`{"amount":12.5,"date":"2024-03-15","description":"lunch","category_id":1}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d (body: %s)", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp["amount"] != "12.50" {
			t.Errorf("expected amount '12.50', got %v", resp["amount"])
		}
		if resp["date"] != "2024-03-15" {
			t.Errorf("expected date '2024-03-15', got %v", resp["date"])
		}
	})

	t.Run("amount validation error returns field detail", func(t *testing.T) {
		mock := &mockExpenseUsecase{
			CreateFunc: func(ctx context.Context, userID uint, input usecase.CreateExpenseInput) (*entity.Expense, error) {
				return nil, &usecase.ValidationError{Field: "amount", Message: "must have at most 2 decimal places"}
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodPost, "/expenses",
			`{"amount":12.345,"date":"2024-03-15","description":"lunch","category_id":1}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}

		var resp struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Fields["amount"] == "" {
			t.Errorf("expected amount field detail, got: %v", resp)
		}
	})

	t.Run("invalid category reference returns 400", func(t *testing.T) {
		mock := &mockExpenseUsecase{
			CreateFunc: func(ctx context.Context, userID uint, input usecase.CreateExpenseInput) (*entity.Expense, error) {
				return nil, usecase.ErrCategoryInvalid
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodPost, "/expenses",
			`{"amount":12.50,"date":"2024-03-15","description":"lunch","category_id":99}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("malformed date rejected at binding", func(t *testing.T) {
		r := setupRouter(&mockExpenseUsecase{})

		w := doJSON(r, http.MethodPost, "/expenses",
			`{"amount":12.50,"date":"15/03/2024","description":"lunch","category_id":1}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("missing description rejected", func(t *testing.T) {
		r := setupRouter(&mockExpenseUsecase{})

		w := doJSON(r, http.MethodPost, "/expenses",
			`{"amount":12.50,"date":"2024-03-15","category_id":1}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_List(t *testing.T) {
	t.Run("query parameters become the filter", func(t *testing.T) {
		var gotFilter usecase.ListFilter
		mock := &mockExpenseUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint, filter usecase.ListFilter) ([]entity.Expense, error) {
				gotFilter = filter
				return []entity.Expense{}, nil
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodGet, "/expenses?from_date=2024-03-01&to_date=2024-03-31&category_id=2", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		if gotFilter.From == nil || !gotFilter.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("From filter not set correctly: %v", gotFilter.From)
		}
		if gotFilter.To == nil || !gotFilter.To.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("To filter not set correctly: %v", gotFilter.To)
		}
		if gotFilter.CategoryID == nil || *gotFilter.CategoryID != 2 {
			t.Errorf("CategoryID filter not set correctly: %v", gotFilter.CategoryID)
		}
	})

	t.Run("no filters yields an empty JSON array", func(t *testing.T) {
		r := setupRouter(&mockExpenseUsecase{})

		w := doJSON(r, http.MethodGet, "/expenses", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Errorf("expected empty array, got: %s", w.Body.String())
		}
	})

	t.Run("malformed from_date rejected", func(t *testing.T) {
		r := setupRouter(&mockExpenseUsecase{})

		w := doJSON(r, http.MethodGet, "/expenses?from_date=yesterday", "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mock       *mockExpenseUsecase
		wantStatus int
	}{
		{
			name: "owner gets the expense",
			path: "/expenses/7",
			mock: &mockExpenseUsecase{
				FindOwnedFunc: func(ctx context.Context, expenseID, userID uint) (*entity.Expense, error) {
					return &entity.Expense{
						ID:     expenseID,
						Amount: decimal.RequireFromString("12.50"),
						Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
						UserID: userID,
					}, nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing expense returns 404",
			path:       "/expenses/999",
			mock:       &mockExpenseUsecase{},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "foreign expense returns 403",
			path: "/expenses/7",
			mock: &mockExpenseUsecase{
				FindOwnedFunc: func(ctx context.Context, expenseID, userID uint) (*entity.Expense, error) {
					return nil, usecase.ErrExpenseForbidden
				},
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "non-numeric id returns 400",
			path:       "/expenses/abc",
			mock:       &mockExpenseUsecase{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.mock)
			w := doJSON(r, http.MethodGet, tt.path, "")

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestExpenseHandler_Update(t *testing.T) {
	t.Run("only provided fields reach the usecase", func(t *testing.T) {
		var gotInput usecase.UpdateExpenseInput
		mock := &mockExpenseUsecase{
			UpdateFunc: func(ctx context.Context, expenseID, userID uint, input usecase.UpdateExpenseInput) (*entity.Expense, error) {
				gotInput = input
				return &entity.Expense{
					ID:     expenseID,
					Amount: *input.Amount,
					Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
					UserID: userID,
				}, nil
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodPatch, "/expenses/7", `{"amount":"20.00"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		if gotInput.Amount == nil || gotInput.Amount.StringFixed(2) != "20.00" {
			t.Error("amount was not passed to the usecase")
		}
		if gotInput.Date != nil || gotInput.Description != nil || gotInput.CategoryID != nil {
			t.Error("absent fields must stay nil")
		}
	})

	t.Run("invalid category change returns 400", func(t *testing.T) {
		mock := &mockExpenseUsecase{
			UpdateFunc: func(ctx context.Context, expenseID, userID uint, input usecase.UpdateExpenseInput) (*entity.Expense, error) {
				return nil, usecase.ErrCategoryInvalid
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodPatch, "/expenses/7", `{"category_id":99}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("foreign expense returns 403", func(t *testing.T) {
		mock := &mockExpenseUsecase{
			UpdateFunc: func(ctx context.Context, expenseID, userID uint, input usecase.UpdateExpenseInput) (*entity.Expense, error) {
				return nil, usecase.ErrExpenseForbidden
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodPatch, "/expenses/7", `{"description":"updated"}`)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})
}

func TestExpenseHandler_Delete(t *testing.T) {
	t.Run("successful delete returns 204", func(t *testing.T) {
		mock := &mockExpenseUsecase{
			DeleteFunc: func(ctx context.Context, expenseID, userID uint) error {
				return nil
			},
		}
		r := setupRouter(mock)

		w := doJSON(r, http.MethodDelete, "/expenses/7", "")

		if w.Code != http.StatusNoContent {
			t.Errorf("expected status 204, got %d", w.Code)
		}
	})

	t.Run("missing expense returns 404", func(t *testing.T) {
		r := setupRouter(&mockExpenseUsecase{})
		w := doJSON(r, http.MethodDelete, "/expenses/999", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}
