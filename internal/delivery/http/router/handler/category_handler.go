package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for the category view handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Presence of the name stays with the usecase; the validator bounds it.
type categoryRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	ParentID string `json:"parent"`
}

// List serves the paginated category table.
func (h *CategoryHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Add creates a category from the add form.
func (h *CategoryHandler) Add(c echo.Context) error {
	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.uc.Add(c.Request().Context(), &usecase.CategoryInput{
		Name:     input.Name,
		ParentID: input.ParentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category added successfully!")
}

// Update modifies a category from the edit form.
func (h *CategoryHandler) Update(c echo.Context) error {
	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.uc.Update(c.Request().Context(), c.Param("id"), &usecase.CategoryInput{
		Name:     input.Name,
		ParentID: input.ParentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully!")
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully!")
}
