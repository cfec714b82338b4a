package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrCategoryNotFound is returned when the backend reports no such category.
var ErrCategoryNotFound = errors.New("category not found")

// NewCategory carries a category creation or edit form.
type NewCategory struct {
	Name     string
	ParentID string
}

// CategoryRepository defines the category operations backed by the remote
// REST service.
type CategoryRepository interface {
	// FindAll retrieves the full category collection.
	FindAll(ctx context.Context) ([]entity.Category, error)

	// Create submits a new category and returns the created record.
	Create(ctx context.Context, category *NewCategory) (*entity.Category, error)

	// Update modifies an existing category and returns the updated record.
	Update(ctx context.Context, id string, category *NewCategory) (*entity.Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id string) error
}
