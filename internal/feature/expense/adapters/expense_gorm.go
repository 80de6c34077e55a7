// Package adapters はexpenseフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"expense_backend/internal/feature/expense/domain/entity"
	"expense_backend/internal/feature/expense/usecase"
)

// expenseGorm はExpenseRepositoryインターフェースのGORM実装です。
type expenseGorm struct {
	db *gorm.DB
}

// expenseGormがExpenseRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ExpenseRepository = (*expenseGorm)(nil)

// NewExpenseGorm は指定されたgorm.DB接続でexpenseGormの新しいインスタンスを生成します。
func NewExpenseGorm(db *gorm.DB) *expenseGorm {
	return &expenseGorm{db: db}
}

// Create は支出をデータベースに追加します。
func (r *expenseGorm) Create(ctx context.Context, e *entity.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ListByUser は指定されたユーザーの支出をフィルタ適用後、
// 取引日の降順（同日はID降順で安定）で返します。
func (r *expenseGorm) ListByUser(ctx context.Context, userID uint, filter usecase.ListFilter) ([]entity.Expense, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var expenses []entity.Expense
	if err := q.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindByID はIDで支出を取得します。
// 支出が存在しない場合、usecase.ErrExpenseNotFoundを返します。
func (r *expenseGorm) FindByID(ctx context.Context, id uint) (*entity.Expense, error) {
	var e entity.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Save は既存支出の変更を永続化します。
func (r *expenseGorm) Save(ctx context.Context, e *entity.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete は支出を削除します。
func (r *expenseGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, id).Error
}
