package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the customer and staff view handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Presence of the form fields stays with the usecase, which owns the
// per-field messages; the validator checks formats only.
type staffRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" validate:"omitempty,oneof=Admin User Manager Designer Staff"`
}

func (r *staffRequest) toInput() *usecase.StaffInput {
	return &usecase.StaffInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		Role:        entity.Role(r.Role),
	}
}

// Customers serves the paginated customer table.
func (h *UserHandler) Customers(c echo.Context) error {
	page, err := h.uc.Customers(c.Request().Context(), queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Staff serves the paginated staff table.
func (h *UserHandler) Staff(c echo.Context) error {
	page, err := h.uc.Staff(c.Request().Context(), queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Detail serves a single user profile.
func (h *UserHandler) Detail(c echo.Context) error {
	user, err := h.uc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// AddStaff creates a staff member from the add-staff form.
func (h *UserHandler) AddStaff(c echo.Context) error {
	var input staffRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.uc.AddStaff(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Staff added successfully!")
}

// UpdateStaff modifies a staff member from the edit form.
func (h *UserHandler) UpdateStaff(c echo.Context) error {
	var input staffRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.uc.UpdateStaff(c.Request().Context(), c.Param("id"), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Staff updated successfully!")
}

// ToggleStatus flips a user between active and inactive.
func (h *UserHandler) ToggleStatus(c echo.Context) error {
	user, err := h.uc.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User status updated successfully!")
}

// Delete removes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully!")
}
