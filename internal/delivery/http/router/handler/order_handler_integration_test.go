package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockrepo "backoffice/internal/mocks/repository"
	mocksvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderHandler(t *testing.T) (*OrderHandler, *mockrepo.MockOrderRepository) {
	t.Helper()

	repo := mockrepo.NewMockOrderRepository(t)
	uc := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo: repo,
		Renderer:  mocksvc.NewMockInvoiceRenderer(t),
		Archive:   mocksvc.NewMockInvoiceArchive(t),
		Config:    newHandlerConfig(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewOrderHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestOrderHandler_ChangeStatus_Integration(t *testing.T) {
	handler, repo := newOrderHandler(t)

	repo.EXPECT().Find(mock.Anything, mock.Anything).Return(&entity.OrderList{
		Orders:  []entity.Order{{ID: "o1", Status: entity.StatusOrderConfirmed}},
		Summary: entity.OrderSummary{TotalOrders: 1},
	}, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "o1", entity.StatusProcessing).
		Return(&entity.Order{ID: "o1", Status: entity.StatusProcessing}, nil)

	e := newEcho()

	listReq := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	listRec := httptest.NewRecorder()
	require.NoError(t, handler.List(e.NewContext(listReq, listRec)))
	assert.Contains(t, listRec.Body.String(), `"TotalOrders":1`)

	body := strings.NewReader(`{"newStatus":"Processing"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/orders/o1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, handler.ChangeStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order status updated successfully!")
	assert.Contains(t, rec.Body.String(), "Processing")
}

func TestOrderHandler_ChangeStatus_IllegalTransition(t *testing.T) {
	handler, repo := newOrderHandler(t)

	repo.EXPECT().Find(mock.Anything, mock.Anything).Return(&entity.OrderList{
		Orders: []entity.Order{{ID: "o1", Status: entity.StatusDelivered}},
	}, nil)

	e := newEcho()

	listReq := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	require.NoError(t, handler.List(e.NewContext(listReq, httptest.NewRecorder())))

	body := strings.NewReader(`{"newStatus":"Processing"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/orders/o1/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("o1")

	err := handler.ChangeStatus(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderHandler_DownloadInvoice_Integration(t *testing.T) {
	handler, repo := newOrderHandler(t)
	repo.EXPECT().DownloadInvoice(mock.Anything, "o1").Return([]byte("%PDF-1.4 invoice"), nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/o1/invoice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, handler.DownloadInvoice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "invoice-o1.pdf")
	assert.Equal(t, "%PDF-1.4 invoice", rec.Body.String())
}

func TestOrderHandler_StatusOptions(t *testing.T) {
	handler, _ := newOrderHandler(t)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/status-options?from=Delivered", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.StatusOptions(e.NewContext(req, rec)))
	body := rec.Body.String()
	assert.Contains(t, body, "Received")
	assert.Contains(t, body, "Return Requested")
	assert.Contains(t, body, `"terminal":false`)
}

func TestOrderHandler_ChangeStatus_MissingStatusRejected(t *testing.T) {
	handler, _ := newOrderHandler(t)

	// no repository expectations: validation stops the request at the edge
	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/update-order-status/o1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, handler.ChangeStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
