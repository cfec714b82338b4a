package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrUserNotFound is returned when the backend reports no such user.
var ErrUserNotFound = errors.New("user not found")

// NewUser carries a staff creation form.
type NewUser struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Role        entity.Role
}

// UpdateUser carries a staff edit form. Empty fields are submitted as-is;
// the backend decides what an empty value means.
type UpdateUser struct {
	FullName    string
	Email       string
	PhoneNumber string
	Role        entity.Role
}

// UserRepository defines the user operations backed by the remote REST
// service. Customers and staff share one backend collection.
type UserRepository interface {
	// FindAll retrieves the full user collection.
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByID retrieves a single user.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create submits a new staff member and returns the created user.
	Create(ctx context.Context, user *NewUser) (*entity.User, error)

	// Update modifies an existing user and returns the updated record.
	Update(ctx context.Context, id string, user *UpdateUser) (*entity.User, error)

	// SetStatus sets the active/inactive flag and returns the updated record.
	SetStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id string) error
}
