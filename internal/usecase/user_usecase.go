package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// UserPage is one page of a user snapshot (customers or staff).
type UserPage struct {
	Items     []entity.User
	Page      int
	PageCount int
	Total     int
}

// StaffInput carries a staff create/edit form.
type StaffInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Role        entity.Role
}

// UserUsecase drives the customer and staff views. Both draw from the same
// backend collection; the role split is applied client-side.
type UserUsecase interface {
	// Customers refreshes the snapshot and returns the requested page of
	// users with the customer role.
	Customers(ctx context.Context, page int) (*UserPage, error)

	// Staff refreshes the snapshot and returns the requested page of
	// users with a non-customer role.
	Staff(ctx context.Context, page int) (*UserPage, error)

	// Detail fetches a single user by id.
	Detail(ctx context.Context, id string) (*entity.User, error)

	// AddStaff validates the form and creates a staff member.
	AddStaff(ctx context.Context, input *StaffInput) (*entity.User, error)

	// UpdateStaff modifies a staff member and patches the row on
	// confirmation.
	UpdateStaff(ctx context.Context, id string, input *StaffInput) (*entity.User, error)

	// ToggleStatus flips active/inactive and patches the row on
	// confirmation.
	ToggleStatus(ctx context.Context, id string) (*entity.User, error)

	// Remove deletes the user and drops the row on confirmation.
	Remove(ctx context.Context, id string) error
}
