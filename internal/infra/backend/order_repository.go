package backend

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates an order repository over the backend client.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) Find(ctx context.Context, query repository.OrderQuery) (*entity.OrderList, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Recent {
		params.Set("recent", "true")
	}

	var model orderListModel
	if err := r.client.get(ctx, "/api/orders/get-orders", params, &model); err != nil {
		return nil, err
	}

	return model.toEntity(), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	body := map[string]string{"newStatus": string(status)}

	var model orderModel
	if err := r.client.sendJSON(ctx, http.MethodPut, "/api/orders/updateOrderStatus/"+id, body, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrOrderNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.sendJSON(ctx, http.MethodDelete, "/api/order/"+id, nil, nil); err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrOrderNotFound)
		}

		return err
	}

	return nil
}

func (r *orderRepository) DownloadInvoice(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.getBinary(ctx, "/api/orders/download-invoice/"+id)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrOrderNotFound)
		}

		return nil, err
	}

	return data, nil
}

func (r *orderRepository) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return r.client.getURL(ctx, imageURL)
}
