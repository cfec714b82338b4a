package backend

import (
	"context"
	"net/http"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type productRepository struct {
	client *Client
}

// NewProductRepository creates a product repository over the backend client.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var models []productModel
	if err := r.client.get(ctx, "/api/products/getall", nil, &models); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(models))
	for i := range models {
		products = append(products, *models[i].toEntity())
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var model productModel
	if err := r.client.get(ctx, "/api/products/"+id, nil, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *productRepository) Create(ctx context.Context, product *repository.NewProduct) (string, error) {
	var result messageModel
	if err := r.client.postMultipart(ctx, "/api/products/add", productFields(product), product.Images, &result); err != nil {
		return "", err
	}

	return result.Message, nil
}

func (r *productRepository) Update(ctx context.Context, id string, product *repository.NewProduct) (*entity.Product, error) {
	var model productModel
	if err := r.client.sendJSON(ctx, http.MethodPut, "/api/products/"+id, productFields(product), &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func productFields(product *repository.NewProduct) map[string]string {
	return map[string]string{
		"name":            product.Name,
		"category":        product.Category,
		"subcategory":     product.Subcategory,
		"slug":            product.Slug,
		"description":     product.Description,
		"size":            product.Size,
		"color":           product.Color,
		"moq":             product.MOQ,
		"originalPrice":   product.OriginalPrice,
		"discountedPrice": product.DiscountedPrice,
		"paperSizes":      product.PaperSizes,
		"paperNames":      product.PaperNames,
		"colors":          product.Colors,
		"quantities":      product.Quantities,
	}
}

func (r *productRepository) SetPublished(ctx context.Context, id string, published bool) (*entity.Product, error) {
	body := map[string]bool{"published": published}

	var model productModel
	if err := r.client.sendJSON(ctx, http.MethodPatch, "/api/products/"+id, body, &model); err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, err
	}

	return model.toEntity(), nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.sendJSON(ctx, http.MethodDelete, "/api/products/delete-product/"+id, nil, nil); err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrProductNotFound)
		}

		return err
	}

	return nil
}
