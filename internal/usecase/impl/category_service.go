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

type categoryService struct {
	categoryRepo repository.CategoryRepository
	categories   *view.Collection[entity.Category]
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCategoryService creates the category usecase.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		categories: view.NewCollection(params.Config.Dashboard.PageSize, func(c entity.Category) string {
			return c.ID
		}),
		logger: params.Logger,
	}
}

func (s *categoryService) List(ctx context.Context, page int) (*usecase.CategoryPage, error) {
	seq := s.categories.BeginFetch()

	items, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch categories")
	}

	if !s.categories.CommitFetch(seq, items) {
		s.logger.Debug("stale category fetch discarded")
	}

	snapshot := s.categories.Items()
	current := s.categories.SetPage(page, len(snapshot))

	return &usecase.CategoryPage{
		Items:     view.Paginate(snapshot, current, s.categories.PageSize()),
		Page:      current,
		PageCount: view.PageCount(len(snapshot), s.categories.PageSize()),
		Total:     len(snapshot),
	}, nil
}

func (s *categoryService) Add(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, domainerrors.NewValidationError(map[string]string{
			"name": "This field is required",
		})
	}

	category, err := s.categoryRepo.Create(ctx, &repository.NewCategory{
		Name:     input.Name,
		ParentID: input.ParentID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create category")
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, input *usecase.CategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, domainerrors.NewValidationError(map[string]string{
			"name": "This field is required",
		})
	}

	category, err := s.categoryRepo.Update(ctx, id, &repository.NewCategory{
		Name:     input.Name,
		ParentID: input.ParentID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
		}

		return nil, errors.Wrap(err, "update category")
	}

	s.categories.Replace(*category)

	return category, nil
}

func (s *categoryService) Remove(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.WithStack(domainerrors.ErrCategoryNotFound)
		}

		return errors.Wrap(err, "delete category")
	}

	s.categories.Remove(id)

	return nil
}
