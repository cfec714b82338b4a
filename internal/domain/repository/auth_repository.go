package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// Credentials is the backend's answer to a successful login or
// registration: the opaque API token plus the backend's own message.
type Credentials struct {
	Token   string
	Message string
}

// Registration carries an admin sign-up form.
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// AuthRepository defines the authentication calls against the remote
// backend. The backend is the only party that verifies credentials.
type AuthRepository interface {
	// Login exchanges email and password for an API token.
	Login(ctx context.Context, email, password string) (*Credentials, error)

	// Register creates an admin account and returns its API token.
	Register(ctx context.Context, registration *Registration) (*Credentials, error)
}
