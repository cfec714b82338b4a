package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// OrderQuery is forwarded to the backend: the order endpoint filters
// server-side.
type OrderQuery struct {
	Search string
	Recent bool
}

// OrderPage is one page of the order snapshot plus the backend's summary
// counters.
type OrderPage struct {
	Orders    []entity.Order
	Summary   entity.OrderSummary
	Page      int
	PageCount int
	Total     int
}

// OrderUsecase drives the order list and its row actions.
type OrderUsecase interface {
	// List refreshes the order snapshot for the query and returns the
	// requested page.
	List(ctx context.Context, query OrderQuery, page int) (*OrderPage, error)

	// ChangeStatus validates the transition against the status table and,
	// only when allowed, submits it and patches the row on confirmation.
	ChangeStatus(ctx context.Context, id string, newStatus entity.OrderStatus) (*entity.Order, error)

	// Remove deletes the order and drops the row on confirmation.
	Remove(ctx context.Context, id string) error

	// DownloadInvoice returns the backend-rendered invoice binary.
	DownloadInvoice(ctx context.Context, id string) ([]byte, error)

	// ExportTemplate fetches the given images, renders them one per page
	// into a PDF stamped with the order QR, archives a copy and returns
	// the bytes.
	ExportTemplate(ctx context.Context, orderID string, imageURLs []string) ([]byte, error)
}
