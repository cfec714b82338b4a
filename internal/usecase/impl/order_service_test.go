package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockService "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	repo     *mockRepo.MockOrderRepository
	renderer *mockService.MockInvoiceRenderer
	archive  *mockService.MockInvoiceArchive
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, orderServiceMocks) {
	mocks := orderServiceMocks{
		repo:     mockRepo.NewMockOrderRepository(t),
		renderer: mockService.NewMockInvoiceRenderer(t),
		archive:  mockService.NewMockInvoiceArchive(t),
	}

	service := NewOrderService(OrderServiceParams{
		OrderRepo: mocks.repo,
		Renderer:  mocks.renderer,
		Archive:   mocks.archive,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return service, mocks
}

func someOrders(statuses ...entity.OrderStatus) *entity.OrderList {
	orders := make([]entity.Order, 0, len(statuses))
	for i, status := range statuses {
		orders = append(orders, entity.Order{
			ID:     string(rune('a' + i)),
			Status: status,
		})
	}

	return &entity.OrderList{
		Orders:  orders,
		Summary: entity.OrderSummary{TotalOrders: len(orders)},
	}
}

func TestOrderService_List_ForwardsQuery(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{Search: "abc", Recent: true}).
		Return(someOrders(entity.StatusPlaced, entity.StatusDelivered), nil)

	page, err := service.List(ctx, usecase.OrderQuery{Search: "abc", Recent: true}, 1)
	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, 2, page.Summary.TotalOrders)
	assert.Equal(t, 1, page.PageCount)
}

func TestOrderService_ChangeStatus_PatchesSingleRow(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{}).
		Return(someOrders(entity.StatusOrderConfirmed), nil).Once()
	_, err := service.List(ctx, usecase.OrderQuery{}, 1)
	require.NoError(t, err)

	updated := &entity.Order{ID: "a", Status: entity.StatusProcessing}
	mocks.repo.EXPECT().
		UpdateStatus(ctx, "a", entity.StatusProcessing).
		Return(updated, nil)

	result, err := service.ChangeStatus(ctx, "a", entity.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, result.Status)
}

func TestOrderService_ChangeStatus_SurvivesFilteredRefresh(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{}).
		Return(someOrders(entity.StatusPlaced, entity.StatusPaymentPending), nil).Once()
	_, err := service.List(ctx, usecase.OrderQuery{}, 1)
	require.NoError(t, err)

	// A search narrows the snapshot down to order "a" only.
	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{Search: "a"}).
		Return(someOrders(entity.StatusPlaced), nil).Once()
	_, err = service.List(ctx, usecase.OrderQuery{Search: "a"}, 1)
	require.NoError(t, err)

	// Order "b" fell out of the snapshot but still exists on the backend;
	// its valid transition must go through.
	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{Search: "b"}).
		Return(&entity.OrderList{
			Orders: []entity.Order{{ID: "b", Status: entity.StatusPaymentPending}},
		}, nil).Once()
	updated := &entity.Order{ID: "b", Status: entity.StatusPaymentConfirmed}
	mocks.repo.EXPECT().
		UpdateStatus(ctx, "b", entity.StatusPaymentConfirmed).
		Return(updated, nil)

	result, err := service.ChangeStatus(ctx, "b", entity.StatusPaymentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaymentConfirmed, result.Status)
}

func TestOrderService_ChangeStatus_UnknownOrderEverywhere(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	// Not in the snapshot and the backend lookup comes back empty; no
	// UpdateStatus expectation.
	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{Search: "ghost"}).
		Return(&entity.OrderList{}, nil).Once()

	_, err := service.ChangeStatus(ctx, "ghost", entity.StatusProcessing)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ChangeStatus_InvalidTransitionNeverSubmits(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{}).
		Return(someOrders(entity.StatusDelivered), nil).Once()
	_, err := service.List(ctx, usecase.OrderQuery{}, 1)
	require.NoError(t, err)

	// Delivered cannot go back to Processing; no UpdateStatus expectation
	_, err = service.ChangeStatus(ctx, "a", entity.StatusProcessing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_ChangeStatus_TerminalStatusRejected(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{}).
		Return(someOrders(entity.StatusCancelled), nil).Once()
	_, err := service.List(ctx, usecase.OrderQuery{}, 1)
	require.NoError(t, err)

	_, err = service.ChangeStatus(ctx, "a", entity.StatusPlaced)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_ChangeStatus_UnknownLabel(t *testing.T) {
	service, _ := newOrderService(t)

	_, err := service.ChangeStatus(context.Background(), "a", "Teleported")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownStatus)
}

func TestOrderService_Remove_CommitDiscipline(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Find(ctx, repository.OrderQuery{}).
		Return(someOrders(entity.StatusPlaced, entity.StatusDraft), nil).Once()
	_, err := service.List(ctx, usecase.OrderQuery{}, 1)
	require.NoError(t, err)

	mocks.repo.EXPECT().Delete(ctx, "a").Return(errors.New("backend down")).Once()
	require.Error(t, service.Remove(ctx, "a"))

	mocks.repo.EXPECT().Delete(ctx, "a").Return(nil).Once()
	require.NoError(t, service.Remove(ctx, "a"))
}

func TestOrderService_DownloadInvoice(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().DownloadInvoice(ctx, "o1").Return([]byte("%PDF"), nil)

	data, err := service.DownloadInvoice(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestOrderService_ExportTemplate(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()

	image := []byte{0x89, 0x50, 0x4e, 0x47}
	mocks.repo.EXPECT().FetchImage(ctx, "https://cdn.example.com/a.png").Return(image, nil)
	mocks.renderer.EXPECT().
		Render(&service.InvoiceDocument{OrderID: "o1", Images: [][]byte{image}}).
		Return([]byte("%PDF rendered"), nil)
	mocks.archive.EXPECT().Store(ctx, "invoice-o1.pdf", []byte("%PDF rendered")).Return(nil)

	data, err := svc.ExportTemplate(ctx, "o1", []string{"https://cdn.example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF rendered"), data)
}

func TestOrderService_ExportTemplate_ArchiveFailureStillReturnsPDF(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()

	image := []byte{0x89}
	mocks.repo.EXPECT().FetchImage(ctx, "https://cdn.example.com/a.png").Return(image, nil)
	mocks.renderer.EXPECT().
		Render(&service.InvoiceDocument{OrderID: "o1", Images: [][]byte{image}}).
		Return([]byte("%PDF"), nil)
	mocks.archive.EXPECT().
		Store(ctx, "invoice-o1.pdf", []byte("%PDF")).
		Return(errors.New("bucket unavailable"))

	data, err := svc.ExportTemplate(ctx, "o1", []string{"https://cdn.example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}
