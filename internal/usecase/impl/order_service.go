package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
	"backoffice/internal/view"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	renderer  service.InvoiceRenderer
	archive   service.InvoiceArchive
	orders    *view.Collection[entity.Order]
	logger    *slog.Logger

	mu      sync.Mutex
	summary entity.OrderSummary
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Renderer  service.InvoiceRenderer
	Archive   service.InvoiceArchive
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates the order usecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		renderer:  params.Renderer,
		archive:   params.Archive,
		orders: view.NewCollection(params.Config.Dashboard.PageSize, func(o entity.Order) string {
			return o.ID
		}),
		logger: params.Logger,
	}
}

// List refreshes the order snapshot for the query. Search and the recent
// flag are forwarded: the order endpoint filters server-side.
func (s *orderService) List(ctx context.Context, query usecase.OrderQuery, page int) (*usecase.OrderPage, error) {
	seq := s.orders.BeginFetch()

	list, err := s.orderRepo.Find(ctx, repository.OrderQuery{
		Search: query.Search,
		Recent: query.Recent,
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetch orders")
	}

	if s.orders.CommitFetch(seq, list.Orders) {
		s.mu.Lock()
		s.summary = list.Summary
		s.mu.Unlock()
	} else {
		s.logger.Debug("stale order fetch discarded")
	}

	items := s.orders.Items()
	current := s.orders.SetPage(page, len(items))

	s.mu.Lock()
	summary := s.summary
	s.mu.Unlock()

	return &usecase.OrderPage{
		Orders:    view.Paginate(items, current, s.orders.PageSize()),
		Summary:   summary,
		Page:      current,
		PageCount: view.PageCount(len(items), s.orders.PageSize()),
		Total:     len(items),
	}, nil
}

// ChangeStatus checks the transition table first: an invalid target never
// reaches the backend.
func (s *orderService) ChangeStatus(ctx context.Context, id string, newStatus entity.OrderStatus) (*entity.Order, error) {
	if !newStatus.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrUnknownStatus)
	}

	current, ok := s.orders.Find(id)
	if !ok {
		// The snapshot may have been narrowed by a filtered refresh;
		// resolve the order against the backend before deciding.
		refetched, err := s.lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		current = *refetched
	}

	if !current.Status.CanTransitionTo(newStatus) {
		return nil, errors.WithStack(domainerrors.ErrInvalidStatusTransition)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "update order status")
	}

	s.orders.Replace(*updated)

	return updated, nil
}

// lookup fetches one order by id through the search query, for rows not in
// the current snapshot.
func (s *orderService) lookup(ctx context.Context, id string) (*entity.Order, error) {
	list, err := s.orderRepo.Find(ctx, repository.OrderQuery{Search: id})
	if err != nil {
		return nil, errors.Wrap(err, "fetch order")
	}

	for i := range list.Orders {
		if list.Orders[i].ID == id {
			return &list.Orders[i], nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
}

func (s *orderService) Remove(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return errors.Wrap(err, "delete order")
	}

	s.orders.Remove(id)

	return nil
}

func (s *orderService) DownloadInvoice(ctx context.Context, id string) ([]byte, error) {
	data, err := s.orderRepo.DownloadInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "download invoice")
	}

	return data, nil
}

// ExportTemplate fetches each image, renders the PDF and archives a copy.
// A failed archive write does not block the download.
func (s *orderService) ExportTemplate(ctx context.Context, orderID string, imageURLs []string) ([]byte, error) {
	images := make([][]byte, 0, len(imageURLs))
	for _, imageURL := range imageURLs {
		data, err := s.orderRepo.FetchImage(ctx, imageURL)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch image %s", imageURL)
		}
		images = append(images, data)
	}

	pdf, err := s.renderer.Render(&service.InvoiceDocument{
		OrderID: orderID,
		Images:  images,
	})
	if err != nil {
		return nil, errors.Wrap(err, "render template")
	}

	name := fmt.Sprintf("invoice-%s.pdf", orderID)
	if err := s.archive.Store(ctx, name, pdf); err != nil {
		s.logger.Warn("invoice archive failed",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}

	return pdf, nil
}
