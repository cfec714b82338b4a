package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/session"
)

// LoginResult is handed to an authenticated client: the signed session
// token plus where and when to redirect.
type LoginResult struct {
	Token         string
	Message       string
	RedirectPath  string
	RedirectDelay time.Duration
}

// RegisterInput carries the admin sign-up form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// AuthUsecase drives login, register, logout and session resolution.
type AuthUsecase interface {
	// Login checks presence of both fields, exchanges them with the
	// backend and creates a server-side session on success.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Register validates the four-field form and creates an admin
	// account, then a session.
	Register(ctx context.Context, input *RegisterInput) (*LoginResult, error)

	// Logout deletes the session a token references. Unknown tokens are
	// a no-op.
	Logout(token string)

	// Authenticate resolves a signed token to its live session.
	Authenticate(token string) (*session.Session, error)
}
