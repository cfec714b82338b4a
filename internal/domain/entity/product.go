// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Product is a catalog entry as the backend understands it. Variant lists
// (paper sizes, names, colors, quantities) are stored as comma-separated
// text, mirroring the backend's storage format.
type Product struct {
	ID              string
	Name            string
	Category        string
	Subcategory     string
	Slug            string
	Description     string
	Size            string
	Color           string
	MOQ             int     // minimum order quantity
	OriginalPrice   float64
	DiscountedPrice float64
	Quantity        int
	PaperSizes      string
	PaperNames      string
	Colors          string
	Quantities      string
	Images          []string
	Published       bool
	Status          ProductStatus
	Discount        float64 // discount percentage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductStatus classifies a product's selling state. The set is open:
// unknown labels coming from the backend are carried through unchanged.
type ProductStatus string

const (
	ProductSelling    ProductStatus = "Selling"
	ProductSoldOut    ProductStatus = "Sold Out"
	ProductComingSoon ProductStatus = "Coming Soon"
	ProductPreOrder   ProductStatus = "Pre Order"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsKnown reports whether the status is one of the observed labels.
func (s ProductStatus) IsKnown() bool {
	switch s {
	case ProductSelling, ProductSoldOut, ProductComingSoon, ProductPreOrder:
		return true
	default:
		return false
	}
}
