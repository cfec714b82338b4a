package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(repo repository.CategoryRepository) usecase.CategoryUsecase {
	return NewCategoryService(CategoryServiceParams{
		CategoryRepo: repo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
}

func TestCategoryService_List(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := newCategoryService(repo)
	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return([]entity.Category{
		{ID: "c1", Name: "Cards"},
		{ID: "c2", Name: "Posters"},
	}, nil)

	page, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.PageCount)
}

func TestCategoryService_Add_RequiresName(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := newCategoryService(repo)

	_, err := service.Add(context.Background(), &usecase.CategoryInput{ParentID: "c1"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "name")
}

func TestCategoryService_Update_PatchesRow(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := newCategoryService(repo)
	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return([]entity.Category{{ID: "c1", Name: "Cards"}}, nil).Once()
	_, err := service.List(ctx, 1)
	require.NoError(t, err)

	renamed := &entity.Category{ID: "c1", Name: "Greeting Cards"}
	repo.EXPECT().
		Update(ctx, "c1", &repository.NewCategory{Name: "Greeting Cards"}).
		Return(renamed, nil)

	category, err := service.Update(ctx, "c1", &usecase.CategoryInput{Name: "Greeting Cards"})
	require.NoError(t, err)
	assert.Equal(t, "Greeting Cards", category.Name)
}

func TestCategoryService_Remove_CommitDiscipline(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := newCategoryService(repo)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "c1").Return(errors.New("backend down")).Once()
	require.Error(t, service.Remove(ctx, "c1"))

	repo.EXPECT().Delete(ctx, "c1").Return(nil).Once()
	require.NoError(t, service.Remove(ctx, "c1"))
}
