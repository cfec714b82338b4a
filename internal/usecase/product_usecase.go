// Package usecase defines the application-layer interfaces: one usecase per
// dashboard view, each owning its collection snapshot and dispatching
// authoritative mutations to the backend.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

// ProductFilter narrows the product snapshot before pagination. Zero values
// leave a dimension unfiltered.
type ProductFilter struct {
	Status    entity.ProductStatus
	PriceMin  *float64
	PriceMax  *float64
	Published *bool
}

// ProductPage is one page of the filtered product snapshot.
type ProductPage struct {
	Items     []entity.Product
	Page      int
	PageCount int
	Total     int
}

// AddProductInput carries the product creation form. Numeric fields travel
// as strings, exactly as submitted.
type AddProductInput struct {
	Name            string
	Category        string
	Subcategory     string
	Slug            string
	Description     string
	Size            string
	Color           string
	MOQ             string
	OriginalPrice   string
	DiscountedPrice string
	PaperSizes      string
	PaperNames      string
	Colors          string
	Quantities      string
	Images          []repository.File
}

// ProductUsecase drives the product list, detail and form views.
type ProductUsecase interface {
	// List refreshes the snapshot, applies the filter and returns the
	// requested page. An out-of-range page keeps the current one.
	List(ctx context.Context, filter ProductFilter, page int) (*ProductPage, error)

	// Detail fetches a single product by id.
	Detail(ctx context.Context, id string) (*entity.Product, error)

	// Add validates the form, submits it as multipart and returns the
	// backend's confirmation message.
	Add(ctx context.Context, input *AddProductInput) (string, error)

	// Update validates the edit form, submits it and patches the row on
	// confirmation.
	Update(ctx context.Context, id string, input *AddProductInput) (*entity.Product, error)

	// TogglePublish flips the publication flag and patches the row on
	// confirmation.
	TogglePublish(ctx context.Context, id string) (*entity.Product, error)

	// Remove deletes the product and drops the row on confirmation.
	Remove(ctx context.Context, id string) error
}
