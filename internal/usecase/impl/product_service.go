// Package impl implements the usecase interfaces over the backend
// repositories. Each service owns the collection snapshot for its view.
package impl

import (
	"context"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
	"backoffice/internal/view"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const productAddedFallback = "Product added successfully!"

type productService struct {
	productRepo repository.ProductRepository
	products    *view.Collection[entity.Product]
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService creates the product usecase.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		products: view.NewCollection(params.Config.Dashboard.PageSize, func(p entity.Product) string {
			return p.ID
		}),
		logger: params.Logger,
	}
}

// List refreshes the snapshot, applies the filter and returns the requested
// page. A failed fetch leaves the previous snapshot intact.
func (s *productService) List(ctx context.Context, filter usecase.ProductFilter, page int) (*usecase.ProductPage, error) {
	seq := s.products.BeginFetch()

	items, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch products")
	}

	if !s.products.CommitFetch(seq, items) {
		s.logger.Debug("stale product fetch discarded")
	}

	filtered := view.Filter(s.products.Items(), func(p entity.Product) bool {
		return matchesProductFilter(p, filter)
	})

	current := s.products.SetPage(page, len(filtered))

	return &usecase.ProductPage{
		Items:     view.Paginate(filtered, current, s.products.PageSize()),
		Page:      current,
		PageCount: view.PageCount(len(filtered), s.products.PageSize()),
		Total:     len(filtered),
	}, nil
}

func (s *productService) Detail(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "fetch product")
	}

	return product, nil
}

// Add validates the required form fields, aborting before any request when
// one is missing.
func (s *productService) Add(ctx context.Context, input *usecase.AddProductInput) (string, error) {
	if err := validateProductInput(input); err != nil {
		return "", err
	}

	message, err := s.productRepo.Create(ctx, toNewProduct(input))
	if err != nil {
		return "", errors.Wrap(err, "create product")
	}

	if message == "" {
		message = productAddedFallback
	}

	return message, nil
}

// Update runs the same required-field check as Add, submits the edit and
// patches the row only after the backend confirms.
func (s *productService) Update(ctx context.Context, id string, input *usecase.AddProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.Update(ctx, id, toNewProduct(input))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "update product")
	}

	s.products.Replace(*updated)

	return updated, nil
}

func validateProductInput(input *usecase.AddProductInput) error {
	fields := map[string]string{}
	for name, value := range map[string]string{
		"paperSizes": input.PaperSizes,
		"paperNames": input.PaperNames,
		"colors":     input.Colors,
		"quantities": input.Quantities,
	} {
		if value == "" {
			fields[name] = "This field is required"
		}
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

func toNewProduct(input *usecase.AddProductInput) *repository.NewProduct {
	return &repository.NewProduct{
		Name:            input.Name,
		Category:        input.Category,
		Subcategory:     input.Subcategory,
		Slug:            input.Slug,
		Description:     input.Description,
		Size:            input.Size,
		Color:           input.Color,
		MOQ:             input.MOQ,
		OriginalPrice:   input.OriginalPrice,
		DiscountedPrice: input.DiscountedPrice,
		PaperSizes:      input.PaperSizes,
		PaperNames:      input.PaperNames,
		Colors:          input.Colors,
		Quantities:      input.Quantities,
		Images:          input.Images,
	}
}

// TogglePublish flips the flag and patches the single row only after the
// backend confirms.
func (s *productService) TogglePublish(ctx context.Context, id string) (*entity.Product, error) {
	current, ok := s.products.Find(id)
	if !ok {
		fetched, err := s.Detail(ctx, id)
		if err != nil {
			return nil, err
		}
		current = *fetched
	}

	updated, err := s.productRepo.SetPublished(ctx, id, !current.Published)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "toggle publish")
	}

	s.products.Replace(*updated)

	return updated, nil
}

// Remove deletes the product and drops the row only after the backend
// confirms.
func (s *productService) Remove(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "delete product")
	}

	s.products.Remove(id)

	return nil
}

func matchesProductFilter(p entity.Product, f usecase.ProductFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.PriceMin != nil && p.DiscountedPrice < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.DiscountedPrice > *f.PriceMax {
		return false
	}
	if f.Published != nil && p.Published != *f.Published {
		return false
	}

	return true
}
