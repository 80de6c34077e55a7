package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "expense_backend/internal/feature/auth/domain/entity"
	categoryentity "expense_backend/internal/feature/category/domain/entity"
	"expense_backend/internal/feature/expense/domain/entity"
	"expense_backend/internal/feature/expense/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	err = db.AutoMigrate(&authentity.User{}, &categoryentity.Category{}, &entity.Expense{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// fixtures creates a user and a category to hang expenses off.
func fixtures(t *testing.T, db *gorm.DB, email string) (*authentity.User, *categoryentity.Category) {
	t.Helper()
	user := &authentity.User{Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	category := &categoryentity.Category{Name: "Food", UserID: user.ID}
	require.NoError(t, db.Create(category).Error)
	return user, category
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func newExpense(amount, date string, userID, categoryID uint, t *testing.T) *entity.Expense {
	return &entity.Expense{
		Amount:      decimal.RequireFromString(amount),
		Date:        mustDate(t, date),
		Description: "test expense",
		UserID:      userID,
		CategoryID:  categoryID,
	}
}

func TestExpenseGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseGorm(db)
	user, category := fixtures(t, db, "owner@example.com")

	expense := newExpense("12.50", "2024-03-15", user.ID, category.ID, t)

	err := repo.Create(context.Background(), expense)

	assert.NoError(t, err, "failed to create expense")
	assert.NotZero(t, expense.ID, "ID is not set")
}

func TestExpenseGorm_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseGorm(db)
	userA, foodA := fixtures(t, db, "a@example.com")
	userB, foodB := fixtures(t, db, "b@example.com")

	transport := &categoryentity.Category{Name: "Transport", UserID: userA.ID}
	require.NoError(t, db.Create(transport).Error)

	// Insertion order deliberately differs from the expected date order.
	older := newExpense("10.00", "2024-03-01", userA.ID, foodA.ID, t)
	newest := newExpense("20.00", "2024-03-20", userA.ID, transport.ID, t)
	sameDayFirst := newExpense("5.00", "2024-03-10", userA.ID, foodA.ID, t)
	sameDaySecond := newExpense("6.00", "2024-03-10", userA.ID, foodA.ID, t)
	foreign := newExpense("99.00", "2024-03-15", userB.ID, foodB.ID, t)
	for _, e := range []*entity.Expense{older, newest, sameDayFirst, sameDaySecond, foreign} {
		require.NoError(t, repo.Create(context.Background(), e))
	}

	t.Run("no filter returns the user's expenses newest first", func(t *testing.T) {
		expenses, err := repo.ListByUser(context.Background(), userA.ID, usecase.ListFilter{})

		require.NoError(t, err)
		require.Len(t, expenses, 4)
		assert.Equal(t, newest.ID, expenses[0].ID)
		// Same-day rows come back in reverse insertion order
		assert.Equal(t, sameDaySecond.ID, expenses[1].ID)
		assert.Equal(t, sameDayFirst.ID, expenses[2].ID)
		assert.Equal(t, older.ID, expenses[3].ID)
	})

	t.Run("date range filter is inclusive on both ends", func(t *testing.T) {
		from := mustDate(t, "2024-03-10")
		to := mustDate(t, "2024-03-20")

		expenses, err := repo.ListByUser(context.Background(), userA.ID, usecase.ListFilter{From: &from, To: &to})

		require.NoError(t, err)
		require.Len(t, expenses, 3)
		for _, e := range expenses {
			assert.False(t, e.Date.Before(from), "expense before From: %v", e.Date)
			assert.False(t, e.Date.After(to), "expense after To: %v", e.Date)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		expenses, err := repo.ListByUser(context.Background(), userA.ID, usecase.ListFilter{CategoryID: &transport.ID})

		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, newest.ID, expenses[0].ID)
	})

	t.Run("combined filters are AND-ed", func(t *testing.T) {
		from := mustDate(t, "2024-03-01")
		to := mustDate(t, "2024-03-10")

		expenses, err := repo.ListByUser(context.Background(), userA.ID, usecase.ListFilter{
			From: &from, To: &to, CategoryID: &foodA.ID,
		})

		require.NoError(t, err)
		assert.Len(t, expenses, 3)
	})

	t.Run("other users' expenses never appear", func(t *testing.T) {
		expenses, err := repo.ListByUser(context.Background(), userB.ID, usecase.ListFilter{})

		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, foreign.ID, expenses[0].ID)
	})
}

func TestExpenseGorm_FindByID(t *testing.T) {
	t.Run("find expense by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewExpenseGorm(db)
		user, category := fixtures(t, db, "owner@example.com")

		created := newExpense("12.50", "2024-03-15", user.ID, category.ID, t)
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.True(t, found.Amount.Equal(decimal.RequireFromString("12.50")),
			"expected amount 12.50, got %s", found.Amount)
		assert.Equal(t, user.ID, found.UserID)
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewExpenseGorm(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrExpenseNotFound)
		assert.Nil(t, found)
	})
}

func TestExpenseGorm_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseGorm(db)
	user, category := fixtures(t, db, "owner@example.com")

	expense := newExpense("12.50", "2024-03-15", user.ID, category.ID, t)
	require.NoError(t, repo.Create(context.Background(), expense))

	expense.Amount = decimal.RequireFromString("30.00")
	expense.Description = "dinner"
	require.NoError(t, repo.Save(context.Background(), expense))

	found, err := repo.FindByID(context.Background(), expense.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, "dinner", found.Description)
}

func TestExpenseGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseGorm(db)
	user, category := fixtures(t, db, "owner@example.com")

	expense := newExpense("12.50", "2024-03-15", user.ID, category.ID, t)
	require.NoError(t, repo.Create(context.Background(), expense))

	require.NoError(t, repo.Delete(context.Background(), expense.ID))

	_, err := repo.FindByID(context.Background(), expense.ID)
	assert.ErrorIs(t, err, usecase.ErrExpenseNotFound)
}
