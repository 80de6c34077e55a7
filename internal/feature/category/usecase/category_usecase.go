// Package usecase はcategoryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"expense_backend/internal/feature/category/domain/entity"
)

// CategoryRepository はカテゴリエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CategoryRepository interface {
	// Create は新しいカテゴリをストレージに永続化します。
	Create(ctx context.Context, category *entity.Category) error

	// ListByUser は指定されたユーザーが所有する全カテゴリを作成順で返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Category, error)

	// FindByID はIDでカテゴリを取得します。
	// カテゴリが存在しない場合、ErrCategoryNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// Save は既存カテゴリの変更を永続化します。
	Save(ctx context.Context, category *entity.Category) error

	// Delete はカテゴリを削除します。
	// 外部キーのON DELETE CASCADEにより、所属する支出も同時に削除されます。
	Delete(ctx context.Context, id uint) error
}

// UpdateCategoryInput は部分更新の入力です。
// nilのフィールドは変更されません。
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryUsecase はカテゴリ管理のビジネスロジックを実装します。
type CategoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase はCategoryUsecaseの新しいインスタンスを生成します。
func NewCategoryUsecase(categories CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

// Create は指定されたユーザーの新しいカテゴリを作成します。
// 同名カテゴリの重複は許可されています。
func (u *CategoryUsecase) Create(ctx context.Context, userID uint, name string, description *string) (*entity.Category, error) {
	category := &entity.Category{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListForUser はユーザーが所有する全カテゴリを返します。
func (u *CategoryUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.Category, error) {
	return u.categories.ListByUser(ctx, userID)
}

// FindOwned はカテゴリを取得し、所有者を検証します。
// カテゴリが存在しない場合はErrCategoryNotFound、
// 存在するが別ユーザーの所有である場合はErrCategoryForbiddenを返します。
// この2段階の区別はHTTPの404と403の使い分けの基盤であり、統合してはなりません。
func (u *CategoryUsecase) FindOwned(ctx context.Context, categoryID, userID uint) (*entity.Category, error) {
	category, err := u.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, ErrCategoryForbidden
	}
	return category, nil
}

// Update はカテゴリを部分更新します。
// FindOwnedの失敗セマンティクスを継承し、nilでないフィールドのみ適用します。
func (u *CategoryUsecase) Update(ctx context.Context, categoryID, userID uint, input UpdateCategoryInput) (*entity.Category, error) {
	category, err := u.FindOwned(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}

	if err := u.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete はカテゴリを削除します。
// FindOwnedの失敗セマンティクスを継承します。
// カスケードにより所属する支出も削除されます。
func (u *CategoryUsecase) Delete(ctx context.Context, categoryID, userID uint) error {
	category, err := u.FindOwned(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	return u.categories.Delete(ctx, category.ID)
}
