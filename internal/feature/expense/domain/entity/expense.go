// Package entity defines the domain entities for the expense feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	authentity "expense_backend/internal/feature/auth/domain/entity"
	categoryentity "expense_backend/internal/feature/category/domain/entity"
)

// Expense is a single monetary transaction owned by one user and
// assigned to one of that user's categories.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID uint `gorm:"primaryKey"`

	// Amount is the transaction amount. Always strictly positive with
	// exactly two fractional digits.
	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Date is the calendar day of the transaction. The time component
	// is always midnight UTC.
	Date time.Time `gorm:"type:date;not null;index"`

	// Description is a required free-text description (1-500 chars).
	Description string `gorm:"size:500;not null"`

	// UserID is the owning user. Deleting the user deletes the expense.
	UserID uint            `gorm:"not null;index"`
	User   authentity.User `gorm:"constraint:OnDelete:CASCADE"`

	// CategoryID references a category owned by the same user.
	// Deleting the category deletes the expense.
	CategoryID uint                    `gorm:"not null;index"`
	Category   categoryentity.Category `gorm:"constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the expense was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the expense was last updated.
	UpdatedAt time.Time
}
