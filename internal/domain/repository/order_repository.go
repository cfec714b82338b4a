package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrOrderNotFound is returned when the backend reports no such order.
var ErrOrderNotFound = errors.New("order not found")

// OrderQuery narrows the order listing. Search matches order id, product id
// or order type on the backend side; Recent asks for newest-first.
type OrderQuery struct {
	Search string
	Recent bool
}

// OrderRepository defines the order operations backed by the remote REST
// service.
type OrderRepository interface {
	// Find retrieves the order collection with its summary counters.
	Find(ctx context.Context, query OrderQuery) (*entity.OrderList, error)

	// UpdateStatus submits a status change and returns the updated order.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// Delete removes an order.
	Delete(ctx context.Context, id string) error

	// DownloadInvoice fetches the backend-rendered invoice binary.
	DownloadInvoice(ctx context.Context, id string) ([]byte, error)

	// FetchImage retrieves an image binary by absolute URL, used by the
	// invoice/template export.
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}
