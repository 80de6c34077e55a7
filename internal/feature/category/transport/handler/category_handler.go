// Package handler はcategoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/category/domain/entity"
	"expense_backend/internal/feature/category/transport/http/dto"
	"expense_backend/internal/feature/category/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// CategoryUsecase はカテゴリ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CategoryUsecase interface {
	Create(ctx context.Context, userID uint, name string, description *string) (*entity.Category, error)
	ListForUser(ctx context.Context, userID uint) ([]entity.Category, error)
	FindOwned(ctx context.Context, categoryID, userID uint) (*entity.Category, error)
	Update(ctx context.Context, categoryID, userID uint, input usecase.UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, categoryID, userID uint) error
}

// CategoryHandler はカテゴリのHTTPリクエストを処理します。
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler は新しい CategoryHandler を作成します。
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create は POST /categories を処理します。
// 成功時は201で作成されたカテゴリを返します。
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("category validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	userID := jwtmw.CurrentUserID(c)
	category, err := h.uc.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResp(category))
}

// List は GET /categories を処理します。
// 認証ユーザーが所有する全カテゴリを返します。
func (h *CategoryHandler) List(c *gin.Context) {
	userID := jwtmw.CurrentUserID(c)
	categories, err := h.uc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list categories"})
		return
	}
	out := make([]dto.CategoryResp, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryResp(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /categories/:id を処理します。
// カテゴリが存在しない場合は404、別ユーザーの所有の場合は403を返します。
func (h *CategoryHandler) Get(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	userID := jwtmw.CurrentUserID(c)
	category, err := h.uc.FindOwned(c.Request.Context(), categoryID, userID)
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResp(category))
}

// Update は PATCH /categories/:id を処理します。
// リクエストに含まれるフィールドのみ更新されます。
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("category validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	userID := jwtmw.CurrentUserID(c)
	category, err := h.uc.Update(c.Request.Context(), categoryID, userID, usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondCategoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResp(category))
}

// Delete は DELETE /categories/:id を処理します。
// カテゴリと、カスケードにより所属する全支出が削除されます。
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	userID := jwtmw.CurrentUserID(c)
	if err := h.uc.Delete(c.Request.Context(), categoryID, userID); err != nil {
		respondCategoryError(c, err)
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

// respondCategoryError はユースケースのエラーをHTTPステータスに変換します。
func respondCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrCategoryNotFound.Error()})
	case errors.Is(err, usecase.ErrCategoryForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: usecase.ErrCategoryForbidden.Error()})
	default:
		slog.Error("category operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
