// Package adapters はcategoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"expense_backend/internal/feature/category/domain/entity"
	"expense_backend/internal/feature/category/usecase"
)

// categoryGorm はCategoryRepositoryインターフェースのGORM実装です。
type categoryGorm struct {
	db *gorm.DB
}

// categoryGormがCategoryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryGorm は指定されたgorm.DB接続でcategoryGormの新しいインスタンスを生成します。
func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// Create はカテゴリをデータベースに追加します。
func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByUser は指定されたユーザーの全カテゴリを作成順（ID昇順）で返します。
func (r *categoryGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID はIDでカテゴリを取得します。
// カテゴリが存在しない場合、usecase.ErrCategoryNotFoundを返します。
func (r *categoryGorm) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// OwnedExists は指定されたカテゴリが存在し、かつ指定されたユーザーの
// 所有であるかどうかを返します。expenseフィーチャーのカテゴリ参照検証で
// 使用されます。存在しない場合と所有者が異なる場合は区別されません。
func (r *categoryGorm) OwnedExists(ctx context.Context, categoryID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save は既存カテゴリの変更を永続化します。
func (r *categoryGorm) Save(ctx context.Context, c *entity.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete はカテゴリを削除します。
// 所属する支出は外部キーのON DELETE CASCADEで削除されます。
func (r *categoryGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, id).Error
}
