// Package dto defines data transfer objects for the category feature's HTTP transport layer.
package dto

import (
	"time"

	"expense_backend/internal/feature/category/domain/entity"
)

// CreateCategoryReq represents the request body for POST /categories.
type CreateCategoryReq struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateCategoryReq represents the request body for PATCH /categories/:id.
// Nil fields are left untouched (partial update).
type UpdateCategoryReq struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// CategoryResp represents a category in API responses.
type CategoryResp struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategoryResp converts a category entity to its wire representation.
func NewCategoryResp(c *entity.Category) CategoryResp {
	return CategoryResp{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
	}
}
