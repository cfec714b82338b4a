package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/delivery/http/validator"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockrepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newHandlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dashboard.PageSize = 5
	cfg.Dashboard.RedirectPath = "/dashboard"
	cfg.Dashboard.RedirectDelay = 2500 * time.Millisecond

	return cfg
}

func newProductHandler(t *testing.T) (*ProductHandler, *mockrepo.MockProductRepository) {
	t.Helper()

	repo := mockrepo.NewMockProductRepository(t)
	uc := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: repo,
		Config:      newHandlerConfig(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewProductHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func catalog(n int) []entity.Product {
	products := make([]entity.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, entity.Product{
			ID:              fmt.Sprintf("p%d", i),
			Name:            fmt.Sprintf("Card %d", i),
			DiscountedPrice: float64(i * 10),
		})
	}

	return products
}

func TestProductHandler_List_Integration(t *testing.T) {
	handler, repo := newProductHandler(t)
	repo.EXPECT().FindAll(mock.Anything).Return(catalog(7), nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"Page":2`)
	assert.Contains(t, body, `"PageCount":2`)
	assert.Contains(t, body, `"Total":7`)
	assert.Contains(t, body, "p6")
	assert.Contains(t, body, "p7")
	assert.NotContains(t, body, "p5")
}

func TestProductHandler_List_InvalidPageFallsBackToFirst(t *testing.T) {
	handler, repo := newProductHandler(t)
	repo.EXPECT().FindAll(mock.Anything).Return(catalog(3), nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=banana", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Contains(t, rec.Body.String(), `"Page":1`)
}

func TestProductHandler_Add_MissingVariantsRejected(t *testing.T) {
	handler, _ := newProductHandler(t)

	form := url.Values{}
	form.Set("name", "Business Card")
	form.Set("paperSizes", "A4,A5")

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Add(c)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := validationErr.Fields()
	assert.Contains(t, fields, "paperNames")
	assert.Contains(t, fields, "colors")
	assert.Contains(t, fields, "quantities")
	assert.NotContains(t, fields, "paperSizes")
}

func TestProductHandler_Update_Integration(t *testing.T) {
	handler, repo := newProductHandler(t)

	updated := entity.Product{ID: "p1", Name: "Renamed Cards"}
	repo.EXPECT().
		Update(mock.Anything, "p1", mock.Anything).
		Return(&updated, nil)

	e := newEcho()
	body := strings.NewReader(`{"name":"Renamed Cards","paperSizes":"A4","paperNames":"Matte","colors":"4/4","quantities":"100"}`)
	req := httptest.NewRequest(http.MethodPut, "/update-product/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed Cards")
	assert.Contains(t, rec.Body.String(), "Product updated successfully!")
}

func TestProductHandler_Update_RejectsNonNumericPrice(t *testing.T) {
	handler, _ := newProductHandler(t)

	// no repository expectations: validation stops the request at the edge
	e := newEcho()
	body := strings.NewReader(`{"originalPrice":"twelve","paperSizes":"A4","paperNames":"Matte","colors":"4/4","quantities":"100"}`)
	req := httptest.NewRequest(http.MethodPut, "/update-product/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
