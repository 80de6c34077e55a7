// Package entity defines the domain entities for the category feature.
package entity

import (
	"time"

	authentity "expense_backend/internal/feature/auth/domain/entity"
)

// Category is a named grouping of expenses owned by exactly one user.
// The owner is fixed at creation and never changes.
type Category struct {
	// ID is the unique identifier for the category.
	ID uint `gorm:"primaryKey"`

	// Name is the display name of the category. Duplicate names per
	// user are allowed; there is no uniqueness constraint.
	Name string `gorm:"size:100;not null"`

	// Description is an optional free-text description.
	Description *string `gorm:"size:255"`

	// UserID is the owning user. Deleting the user deletes the category.
	UserID uint            `gorm:"not null;index"`
	User   authentity.User `gorm:"constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the category was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the category was last updated.
	UpdatedAt time.Time
}
