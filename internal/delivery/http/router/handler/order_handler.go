package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order view handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type changeStatusRequest struct {
	NewStatus string `json:"newStatus" validate:"required"`
}

type exportTemplateRequest struct {
	ImageURLs []string `json:"imageUrls" validate:"omitempty,dive,url"`
}

// List serves the paginated order table with summary counters.
func (h *OrderHandler) List(c echo.Context) error {
	recent, _ := strconv.ParseBool(c.QueryParam("recent"))

	page, err := h.uc.List(c.Request().Context(), usecase.OrderQuery{
		Search: c.QueryParam("search"),
		Recent: recent,
	}, queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Dashboard serves the landing view: recent orders plus summary counters.
func (h *OrderHandler) Dashboard(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), usecase.OrderQuery{Recent: true}, 1)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ChangeStatus moves one order along the status table.
func (h *OrderHandler) ChangeStatus(c echo.Context) error {
	var input changeStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.uc.ChangeStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(input.NewStatus))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully!")
}

// Delete removes one order.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully!")
}

// DownloadInvoice streams the backend-rendered invoice.
func (h *OrderHandler) DownloadInvoice(c echo.Context) error {
	data, err := h.uc.DownloadInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, c.Param("id")))

	return c.Blob(http.StatusOK, "application/pdf", data)
}

// ExportTemplate renders the given images into a downloadable PDF.
func (h *OrderHandler) ExportTemplate(c echo.Context) error {
	var input exportTemplateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid export input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	data, err := h.uc.ExportTemplate(c.Request().Context(), c.Param("id"), input.ImageURLs)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="template-%s.pdf"`, c.Param("id")))

	return c.Blob(http.StatusOK, "application/pdf", data)
}

// StatusOptions lists the transitions available from an order's current
// status, for the row's status dropdown.
func (h *OrderHandler) StatusOptions(c echo.Context) error {
	raw := c.QueryParam("from")
	status, ok := entity.ParseOrderStatus(raw)
	if !ok {
		return response.BadRequest(c, "UNKNOWN_STATUS", "Unknown order status label")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"from":     status,
		"terminal": status.IsTerminal(),
		"options":  status.Transitions(),
	}, "")
}
