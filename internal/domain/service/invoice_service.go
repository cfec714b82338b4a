package service

import "context"

// InvoiceDocument is the input for an invoice/template export: the order it
// belongs to and the page images, one image per page.
type InvoiceDocument struct {
	OrderID string
	Images  [][]byte
}

// InvoiceRenderer turns fetched image binaries into a downloadable PDF.
type InvoiceRenderer interface {
	// Render produces a PDF with one image per page and an order QR code.
	Render(doc *InvoiceDocument) ([]byte, error)
}

// InvoiceArchive keeps a copy of every exported invoice.
type InvoiceArchive interface {
	// Store writes an exported document under the given name.
	Store(ctx context.Context, name string, data []byte) error

	// Close releases the underlying bucket.
	Close() error
}
