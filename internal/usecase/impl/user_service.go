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

type userService struct {
	userRepo  repository.UserRepository
	customers *view.Collection[entity.User]
	staffs    *view.Collection[entity.User]
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService creates the user usecase. Customers and staff are separate
// views over the same backend collection, each with its own page state.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	id := func(u entity.User) string { return u.ID }

	return &userService{
		userRepo:  params.UserRepo,
		customers: view.NewCollection(params.Config.Dashboard.PageSize, id),
		staffs:    view.NewCollection(params.Config.Dashboard.PageSize, id),
		logger:    params.Logger,
	}
}

func (s *userService) Customers(ctx context.Context, page int) (*usecase.UserPage, error) {
	return s.list(ctx, s.customers, page, func(u entity.User) bool {
		return !u.IsStaff()
	})
}

func (s *userService) Staff(ctx context.Context, page int) (*usecase.UserPage, error) {
	return s.list(ctx, s.staffs, page, func(u entity.User) bool {
		return u.IsStaff()
	})
}

// list refreshes one of the role views: full fetch, client-side role split,
// fixed-size pagination.
func (s *userService) list(ctx context.Context, collection *view.Collection[entity.User], page int, pred func(entity.User) bool) (*usecase.UserPage, error) {
	seq := collection.BeginFetch()

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch users")
	}

	if !collection.CommitFetch(seq, view.Filter(users, pred)) {
		s.logger.Debug("stale user fetch discarded")
	}

	items := collection.Items()
	current := collection.SetPage(page, len(items))

	return &usecase.UserPage{
		Items:     view.Paginate(items, current, collection.PageSize()),
		Page:      current,
		PageCount: view.PageCount(len(items), collection.PageSize()),
		Total:     len(items),
	}, nil
}

func (s *userService) Detail(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "fetch user")
	}

	return user, nil
}

func (s *userService) AddStaff(ctx context.Context, input *usecase.StaffInput) (*entity.User, error) {
	if err := validateStaffInput(input, true); err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &repository.NewUser{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create staff")
	}

	return user, nil
}

func (s *userService) UpdateStaff(ctx context.Context, id string, input *usecase.StaffInput) (*entity.User, error) {
	if err := validateStaffInput(input, false); err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(ctx, id, &repository.UpdateUser{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "update staff")
	}

	s.patch(*user)

	return user, nil
}

func (s *userService) ToggleStatus(ctx context.Context, id string) (*entity.User, error) {
	current, ok := s.staffs.Find(id)
	if !ok {
		if current, ok = s.customers.Find(id); !ok {
			fetched, err := s.Detail(ctx, id)
			if err != nil {
				return nil, err
			}
			current = *fetched
		}
	}

	updated, err := s.userRepo.SetStatus(ctx, id, current.Status.Toggled())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "toggle user status")
	}

	s.patch(*updated)

	return updated, nil
}

func (s *userService) Remove(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "delete user")
	}

	s.customers.Remove(id)
	s.staffs.Remove(id)

	return nil
}

// patch updates whichever role view currently holds the row.
func (s *userService) patch(user entity.User) {
	s.customers.Replace(user)
	s.staffs.Replace(user)
}

func validateStaffInput(input *usecase.StaffInput, requirePassword bool) error {
	fields := map[string]string{}
	if input.FullName == "" {
		fields["fullName"] = "Full Name is required"
	}
	if input.Email == "" {
		fields["email"] = "Email is required"
	}
	if requirePassword && input.Password == "" {
		fields["password"] = "Password is required"
	}
	if input.Role == "" {
		fields["role"] = "Role is required"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
