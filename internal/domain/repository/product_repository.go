// Package repository defines the interfaces for the remote backend access
// layer. These interfaces act as a contract between the application layer
// and the HTTP client implementation.
package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrProductNotFound is returned when the backend reports no such product.
var ErrProductNotFound = errors.New("product not found")

// File is an uploaded file attached to a multipart submission.
type File struct {
	FieldName string
	Name      string
	Content   []byte
}

// NewProduct carries a product creation form. Numeric fields stay strings:
// the backend accepts them as submitted by native form controls, with no
// client-side coercion.
type NewProduct struct {
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
	Images          []File
}

// ProductRepository defines the product operations backed by the remote
// REST service.
type ProductRepository interface {
	// FindAll retrieves the full product collection.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create submits a new product as multipart form data and returns the
	// backend's confirmation message.
	Create(ctx context.Context, product *NewProduct) (string, error)

	// Update modifies an existing product and returns the updated record.
	Update(ctx context.Context, id string, product *NewProduct) (*entity.Product, error)

	// SetPublished flips the publication flag and returns the updated product.
	SetPublished(ctx context.Context, id string, published bool) (*entity.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error
}
