package usecase

import "errors"

var (
	// ErrCategoryNotFound is returned when no category with the given ID exists at all.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryForbidden is returned when the category exists but is owned by a different user.
	// The distinction from ErrCategoryNotFound is deliberate: it drives 404 vs 403.
	ErrCategoryForbidden = errors.New("not authorized to access this category")
)
