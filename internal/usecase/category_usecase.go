package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// CategoryPage is one page of the category snapshot.
type CategoryPage struct {
	Items     []entity.Category
	Page      int
	PageCount int
	Total     int
}

// CategoryInput carries a category create/edit form.
type CategoryInput struct {
	Name     string
	ParentID string
}

// CategoryUsecase drives the category list and its forms.
type CategoryUsecase interface {
	// List refreshes the snapshot and returns the requested page.
	List(ctx context.Context, page int) (*CategoryPage, error)

	// Add validates the form and creates a category.
	Add(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// Update modifies a category and patches the row on confirmation.
	Update(ctx context.Context, id string, input *CategoryInput) (*entity.Category, error)

	// Remove deletes the category and drops the row on confirmation.
	Remove(ctx context.Context, id string) error
}
