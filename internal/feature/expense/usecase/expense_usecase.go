// Package usecase はexpenseフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"expense_backend/internal/feature/expense/domain/entity"
)

// ListFilter は支出一覧の絞り込み条件です。nilのフィールドは適用されません。
// 複数の条件はAND結合されます。
type ListFilter struct {
	// From は取引日の下限（この日を含む）です。
	From *time.Time
	// To は取引日の上限（この日を含む）です。
	To *time.Time
	// CategoryID はカテゴリの完全一致です。
	CategoryID *uint
}

// ExpenseRepository は支出エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ExpenseRepository interface {
	// Create は新しい支出をストレージに永続化します。
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByUser は指定されたユーザーの支出をフィルタ適用後、
	// 取引日の降順（同日はID降順）で返します。
	ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]entity.Expense, error)

	// FindByID はIDで支出を取得します。
	// 支出が存在しない場合、ErrExpenseNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Expense, error)

	// Save は既存支出の変更を永続化します。
	Save(ctx context.Context, expense *entity.Expense) error

	// Delete は支出を削除します。
	Delete(ctx context.Context, id uint) error
}

// CategoryReader はカテゴリの所有チェックを抽象化します。
// categoryフィーチャーのアダプターが実装を提供します。
type CategoryReader interface {
	// OwnedExists は指定されたカテゴリが存在し、かつ指定されたユーザーの
	// 所有であるかどうかを返します。
	OwnedExists(ctx context.Context, categoryID, userID uint) (bool, error)
}

// CreateExpenseInput は支出作成の入力です。
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CategoryID  uint
}

// UpdateExpenseInput は部分更新の入力です。nilのフィールドは変更されません。
type UpdateExpenseInput struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	CategoryID  *uint
}

// ExpenseUsecase は支出管理のビジネスロジックを実装します。
type ExpenseUsecase struct {
	expenses   ExpenseRepository
	categories CategoryReader
}

// NewExpenseUsecase はExpenseUsecaseの新しいインスタンスを生成します。
func NewExpenseUsecase(expenses ExpenseRepository, categories CategoryReader) *ExpenseUsecase {
	return &ExpenseUsecase{
		expenses:   expenses,
		categories: categories,
	}
}

// normalizeAmount は金額を検証し、小数点以下2桁に正規化します。
// 正の値でない、または小数点以下3桁以上の場合は*ValidationErrorを返します。
// 12.5 は 12.50 として保存されます。
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Message: "must have at most 2 decimal places"}
	}
	return amount.Round(2), nil
}

// normalizeDate は取引日をUTCの0時に正規化します。
// 取引日はカレンダー日付であり、時刻成分は持ちません。
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// checkCategory はカテゴリ参照を検証します。
// カテゴリが存在しない場合と別ユーザーの所有である場合は、
// どちらもErrCategoryInvalidに統合されます（意図的な仕様）。
func (u *ExpenseUsecase) checkCategory(ctx context.Context, categoryID, userID uint) error {
	ok, err := u.categories.OwnedExists(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryInvalid
	}
	return nil
}

// Create は指定されたユーザーの新しい支出を作成します。
// 金額を検証・正規化し、カテゴリ参照の所有を確認してから永続化します。
func (u *ExpenseUsecase) Create(ctx context.Context, userID uint, input CreateExpenseInput) (*entity.Expense, error) {
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if err := u.checkCategory(ctx, input.CategoryID, userID); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		Amount:      amount,
		Date:        normalizeDate(input.Date),
		Description: input.Description,
		UserID:      userID,
		CategoryID:  input.CategoryID,
	}
	if err := u.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListForUser はユーザーの支出をフィルタ適用後、取引日の降順で返します。
func (u *ExpenseUsecase) ListForUser(ctx context.Context, userID uint, filter ListFilter) ([]entity.Expense, error) {
	if filter.From != nil {
		d := normalizeDate(*filter.From)
		filter.From = &d
	}
	if filter.To != nil {
		d := normalizeDate(*filter.To)
		filter.To = &d
	}
	return u.expenses.ListByUser(ctx, userID, filter)
}

// FindOwned は支出を取得し、所有者を検証します。
// 支出が存在しない場合はErrExpenseNotFound、
// 存在するが別ユーザーの所有である場合はErrExpenseForbiddenを返します。
// この2段階の区別はHTTPの404と403の使い分けの基盤であり、統合してはなりません。
func (u *ExpenseUsecase) FindOwned(ctx context.Context, expenseID, userID uint) (*entity.Expense, error) {
	expense, err := u.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != userID {
		return nil, ErrExpenseForbidden
	}
	return expense, nil
}

// Update は支出を部分更新します。
// FindOwnedの失敗セマンティクスを継承します。
// カテゴリ変更時は作成時と同一のルールで再検証されます。
func (u *ExpenseUsecase) Update(ctx context.Context, expenseID, userID uint, input UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := u.FindOwned(ctx, expenseID, userID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		amount, err := normalizeAmount(*input.Amount)
		if err != nil {
			return nil, err
		}
		expense.Amount = amount
	}
	if input.Date != nil {
		expense.Date = normalizeDate(*input.Date)
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.CategoryID != nil {
		if err := u.checkCategory(ctx, *input.CategoryID, userID); err != nil {
			return nil, err
		}
		expense.CategoryID = *input.CategoryID
	}

	if err := u.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete は支出を削除します。FindOwnedの失敗セマンティクスを継承します。
func (u *ExpenseUsecase) Delete(ctx context.Context, expenseID, userID uint) error {
	expense, err := u.FindOwned(ctx, expenseID, userID)
	if err != nil {
		return err
	}
	return u.expenses.Delete(ctx, expense.ID)
}
