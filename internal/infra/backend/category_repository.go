package backend

import (
	"context"
	"net/http"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type categoryRepository struct {
	client *Client
}

// NewCategoryRepository creates a category repository over the backend client.
func NewCategoryRepository(client *Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	var models []categoryModel
	if err := r.client.get(ctx, "/api/categories/getall", nil, &models); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, *models[i].toEntity())
	}

	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *repository.NewCategory) (*entity.Category, error) {
	body := map[string]string{
		"name":   category.Name,
		"parent": category.ParentID,
	}

	var model categoryModel
	if err := r.client.sendJSON(ctx, http.MethodPost, "/api/categories/add", body, &model); err != nil {
		return nil, err
	}

	return model.toEntity(), nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, category *repository.NewCategory) (*entity.Category, error) {
	body := map[string]string{
		"name":   category.Name,
		"parent": category.ParentID,
	}

	var model categoryModel
	if err := r.client.sendJSON(ctx, http.MethodPut, "/api/categories/"+id, body, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrCategoryNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.sendJSON(ctx, http.MethodDelete, "/api/categories/delete-category/"+id, nil, nil); err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrCategoryNotFound)
		}

		return err
	}

	return nil
}
