package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrExpenseNotFound is returned when no expense with the given ID exists at all.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseForbidden is returned when the expense exists but is owned by a different user.
	// The distinction from ErrExpenseNotFound is deliberate: it drives 404 vs 403.
	ErrExpenseForbidden = errors.New("not authorized to access this expense")

	// ErrCategoryInvalid is returned when the referenced category does not
	// exist or belongs to a different user. Both cases collapse into this
	// single error on expense writes; callers must not learn which it was.
	ErrCategoryInvalid = errors.New("category not found or does not belong to you")
)

// ValidationError reports a rejected input value with per-field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
