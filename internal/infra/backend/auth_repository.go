package backend

import (
	"context"
	"net/http"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository creates an auth repository over the backend client.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*repository.Credentials, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var model credentialsModel
	if err := r.client.sendJSON(ctx, http.MethodPost, "/api/admin/login", body, &model); err != nil {
		if isRejectedCredentials(err) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, err
	}

	return &repository.Credentials{Token: model.Token, Message: model.Message}, nil
}

func (r *authRepository) Register(ctx context.Context, registration *repository.Registration) (*repository.Credentials, error) {
	body := map[string]string{
		"name":     registration.Name,
		"email":    registration.Email,
		"password": registration.Password,
		"role":     string(registration.Role),
	}

	var model credentialsModel
	if err := r.client.sendJSON(ctx, http.MethodPost, "/api/admin/register", body, &model); err != nil {
		return nil, err
	}

	return &repository.Credentials{Token: model.Token, Message: model.Message}, nil
}

// isRejectedCredentials reports whether the backend refused the login
// outright, as opposed to failing.
func isRejectedCredentials(err error) bool {
	var backendErr *domainerrors.BackendError
	if errors.As(err, &backendErr) {
		code := backendErr.HTTPCode()

		return code == http.StatusUnauthorized || code == http.StatusForbidden || code == http.StatusBadRequest
	}

	return false
}
