package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product view handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List serves the paginated product table.
func (h *ProductHandler) List(c echo.Context) error {
	filter := usecase.ProductFilter{
		Status: entity.ProductStatus(c.QueryParam("status")),
	}
	if raw := c.QueryParam("priceMin"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PriceMin = &v
		}
	}
	if raw := c.QueryParam("priceMax"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PriceMax = &v
		}
	}
	if raw := c.QueryParam("published"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Published = &v
		}
	}

	page, err := h.uc.List(c.Request().Context(), filter, queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Detail serves one product.
func (h *ProductHandler) Detail(c echo.Context) error {
	product, err := h.uc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Add accepts the multipart product form.
func (h *ProductHandler) Add(c echo.Context) error {
	input := &usecase.AddProductInput{
		Name:            c.FormValue("name"),
		Category:        c.FormValue("category"),
		Subcategory:     c.FormValue("subcategory"),
		Slug:            c.FormValue("slug"),
		Description:     c.FormValue("description"),
		Size:            c.FormValue("size"),
		Color:           c.FormValue("color"),
		MOQ:             c.FormValue("moq"),
		OriginalPrice:   c.FormValue("originalPrice"),
		DiscountedPrice: c.FormValue("discountedPrice"),
		PaperSizes:      c.FormValue("paperSizes"),
		PaperNames:      c.FormValue("paperNames"),
		Colors:          c.FormValue("colors"),
		Quantities:      c.FormValue("quantities"),
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, header := range form.File["images"] {
			file, err := header.Open()
			if err != nil {
				return response.BindingError(c, "INVALID_INPUT", "Unreadable image attachment")
			}

			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return response.BindingError(c, "INVALID_INPUT", "Unreadable image attachment")
			}

			input.Images = append(input.Images, repository.File{
				FieldName: "images",
				Name:      header.Filename,
				Content:   content,
			})
		}
	}

	message, err := h.uc.Add(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

// Numeric fields travel as strings, exactly as submitted by form controls.
type updateProductRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Subcategory     string `json:"subcategory"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	Size            string `json:"size"`
	Color           string `json:"color"`
	MOQ             string `json:"moq" validate:"omitempty,numeric"`
	OriginalPrice   string `json:"originalPrice" validate:"omitempty,numeric"`
	DiscountedPrice string `json:"discountedPrice" validate:"omitempty,numeric"`
	PaperSizes      string `json:"paperSizes"`
	PaperNames      string `json:"paperNames"`
	Colors          string `json:"colors"`
	Quantities      string `json:"quantities"`
}

// Update accepts the product edit form.
func (h *ProductHandler) Update(c echo.Context) error {
	var input updateProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.uc.Update(c.Request().Context(), c.Param("id"), &usecase.AddProductInput{
		Name:            input.Name,
		Category:        input.Category,
		Subcategory:     input.Subcategory,
		Slug:            input.Slug,
		Description:     input.Description,
		Size:            input.Size,
		Color:           input.Color,
		MOQ:             input.MOQ,
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
		PaperSizes:      input.PaperSizes,
		PaperNames:      input.PaperNames,
		Colors:          input.Colors,
		Quantities:      input.Quantities,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully!")
}

// TogglePublish flips the publication flag of one product.
func (h *ProductHandler) TogglePublish(c echo.Context) error {
	product, err := h.uc.TogglePublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Delete removes one product.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully!")
}

// queryPage parses the page query parameter; anything unparsable requests
// page 1.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
