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

func newUserService(repo repository.UserRepository) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo: repo,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})
}

func mixedUsers() []entity.User {
	return []entity.User{
		{ID: "u1", FullName: "Customer One", Role: entity.RoleUser, Status: entity.AccountActive},
		{ID: "u2", FullName: "Admin", Role: entity.RoleAdmin, Status: entity.AccountActive},
		{ID: "u3", FullName: "Customer Two", Role: entity.RoleUser, Status: entity.AccountInactive},
		{ID: "u4", FullName: "Designer", Role: entity.RoleDesigner, Status: entity.AccountActive},
		{ID: "u5", FullName: "Manager", Role: entity.RoleManager, Status: entity.AccountActive},
	}
}

func TestUserService_RoleSplit(t *testing.T) {
	repo := mockRepo.NewMockUserRepository(t)
	service := newUserService(repo)
	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return(mixedUsers(), nil).Twice()

	customers, err := service.Customers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, customers.Total)
	for _, u := range customers.Items {
		assert.Equal(t, entity.RoleUser, u.Role)
	}

	staff, err := service.Staff(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, staff.Total)
	for _, u := range staff.Items {
		assert.True(t, u.IsStaff())
	}
}

func TestUserService_AddStaff_ValidationShortCircuit(t *testing.T) {
	repo := mockRepo.NewMockUserRepository(t)
	service := newUserService(repo)

	_, err := service.AddStaff(context.Background(), &usecase.StaffInput{
		Email: "new@example.com",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := validationErr.Fields()
	assert.Equal(t, "Full Name is required", fields["fullName"])
	assert.Equal(t, "Password is required", fields["password"])
	assert.Equal(t, "Role is required", fields["role"])
	assert.NotContains(t, fields, "email")
}

func TestUserService_AddStaff_Success(t *testing.T) {
	repo := mockRepo.NewMockUserRepository(t)
	service := newUserService(repo)
	ctx := context.Background()

	created := &entity.User{ID: "u9", FullName: "New Staff", Role: entity.RoleStaff}
	repo.EXPECT().
		Create(ctx, &repository.NewUser{
			FullName: "New Staff",
			Email:    "new@example.com",
			Password: "secret",
			Role:     entity.RoleStaff,
		}).
		Return(created, nil)

	user, err := service.AddStaff(ctx, &usecase.StaffInput{
		FullName: "New Staff",
		Email:    "new@example.com",
		Password: "secret",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", user.ID)
}

func TestUserService_ToggleStatus_AwaitThenCommit(t *testing.T) {
	repo := mockRepo.NewMockUserRepository(t)
	service := newUserService(repo)
	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return(mixedUsers(), nil).Once()
	_, err := service.Staff(ctx, 1)
	require.NoError(t, err)

	// u2 is active; the toggle requests inactive
	toggled := &entity.User{ID: "u2", FullName: "Admin", Role: entity.RoleAdmin, Status: entity.AccountInactive}
	repo.EXPECT().SetStatus(ctx, "u2", entity.AccountInactive).Return(toggled, nil)

	user, err := service.ToggleStatus(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountInactive, user.Status)
}

func TestUserService_ToggleStatus_FallsBackToDetail(t *testing.T) {
	repo := mockRepo.NewMockUserRepository(t)
	service := newUserService(repo)
	ctx := context.Background()

	// empty snapshot: the service fetches the user first
	fetched := &entity.User{ID: "u7", Status: entity.AccountInactive}
	repo.EXPECT().FindByID(ctx, "u7").Return(fetched, nil)
	toggled := &entity.User{ID: "u7", Status: entity.AccountActive}
	repo.EXPECT().SetStatus(ctx, "u7", entity.AccountActive).Return(toggled, nil)

	user, err := service.ToggleStatus(ctx, "u7")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountActive, user.Status)
}

func TestUserService_Remove_NotFound(t *testing.T) {
	repo := mockRepo.NewMockUserRepository(t)
	service := newUserService(repo)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "ghost").Return(repository.ErrUserNotFound)

	err := service.Remove(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
