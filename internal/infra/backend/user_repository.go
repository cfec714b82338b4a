package backend

import (
	"context"
	"net/http"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type userRepository struct {
	client *Client
}

// NewUserRepository creates a user repository over the backend client.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var models []userModel
	if err := r.client.get(ctx, "/api/users/getall", nil, &models); err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].toEntity())
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var model userModel
	if err := r.client.get(ctx, "/api/users/"+id, nil, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *userRepository) Create(ctx context.Context, user *repository.NewUser) (*entity.User, error) {
	body := map[string]string{
		"fullName":    user.FullName,
		"email":       user.Email,
		"password":    user.Password,
		"phoneNumber": user.PhoneNumber,
		"role":        string(user.Role),
	}

	var model userModel
	if err := r.client.sendJSON(ctx, http.MethodPost, "/api/users/add", body, &model); err != nil {
		return nil, err
	}

	return model.toEntity(), nil
}

func (r *userRepository) Update(ctx context.Context, id string, user *repository.UpdateUser) (*entity.User, error) {
	body := map[string]string{
		"fullName":    user.FullName,
		"email":       user.Email,
		"phoneNumber": user.PhoneNumber,
		"role":        string(user.Role),
	}

	var model userModel
	if err := r.client.sendJSON(ctx, http.MethodPut, "/api/users/"+id, body, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *userRepository) SetStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.User, error) {
	body := map[string]string{"Status": string(status)}

	var model userModel
	if err := r.client.sendJSON(ctx, http.MethodPatch, "/api/users/"+id, body, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.sendJSON(ctx, http.MethodDelete, "/api/users/delete-user/"+id, nil, nil); err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return err
	}

	return nil
}
