package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/session"
	mockRepo "backoffice/internal/mocks/repository"
	mockService "backoffice/internal/mocks/service"
	mockSession "backoffice/internal/mocks/session"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	repo     *mockRepo.MockAuthRepository
	sessions *mockSession.MockStore
	tokens   *mockService.MockTokenService
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	mocks := authServiceMocks{
		repo:     mockRepo.NewMockAuthRepository(t),
		sessions: mockSession.NewMockStore(t),
		tokens:   mockService.NewMockTokenService(t),
	}

	service := NewAuthService(AuthServiceParams{
		AuthRepo: mocks.repo,
		Sessions: mocks.sessions,
		Tokens:   mocks.tokens,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return service, mocks
}

func TestAuthService_Login_MissingFieldsNeverSubmit(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	// no Login expectation: the repository must never be called
	_, err := service.Login(ctx, "admin@example.com", "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)

	_, err = service.Login(ctx, "", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestAuthService_Login_MissingCredentialsMessage(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Login(context.Background(), "", "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Please enter both email and password.", appErr.Message())
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Login(ctx, "admin@example.com", "secret").
		Return(&repository.Credentials{Token: "backend-token", Message: "Login Success!"}, nil)
	mocks.sessions.EXPECT().
		Create("backend-token", "admin@example.com").
		Return(&session.Session{ID: "sess-1", BackendToken: "backend-token"})
	mocks.tokens.EXPECT().Sign("sess-1").Return("signed.jwt", nil)

	result, err := service.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", result.Token)
	assert.Equal(t, "Login Success!", result.Message)
	assert.Equal(t, "/dashboard", result.RedirectPath)
	assert.Equal(t, 2500*time.Millisecond, result.RedirectDelay)
}

func TestAuthService_Login_BackendRejection(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Login(ctx, "admin@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := service.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Register_FieldErrorMap(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email: "new@example.com",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := validationErr.Fields()
	assert.Len(t, fields, 3)
	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Password is required", fields["password"])
	assert.Equal(t, "Role is required", fields["role"])
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "New Admin",
		Email:    "new@example.com",
		Password: "secret",
		Role:     "Admin",
	}

	mocks.repo.EXPECT().
		Register(ctx, &repository.Registration{
			Name:     "New Admin",
			Email:    "new@example.com",
			Password: "secret",
			Role:     "Admin",
		}).
		Return(&repository.Credentials{Token: "backend-token"}, nil)
	mocks.sessions.EXPECT().
		Create("backend-token", "new@example.com").
		Return(&session.Session{ID: "sess-2"})
	mocks.tokens.EXPECT().Sign("sess-2").Return("signed.jwt", nil)

	result, err := service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", result.Token)
	assert.Equal(t, "Login successful!", result.Message)
}

func TestAuthService_Login_SignFailureDropsSession(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		Login(ctx, "admin@example.com", "secret").
		Return(&repository.Credentials{Token: "backend-token"}, nil)
	mocks.sessions.EXPECT().
		Create("backend-token", "admin@example.com").
		Return(&session.Session{ID: "sess-3"})
	mocks.tokens.EXPECT().Sign("sess-3").Return("", errors.New("no secret"))
	mocks.sessions.EXPECT().Delete("sess-3").Return()

	_, err := service.Login(ctx, "admin@example.com", "secret")
	assert.Error(t, err)
}

func TestAuthService_Authenticate(t *testing.T) {
	service, mocks := newAuthService(t)

	live := &session.Session{ID: "sess-1", BackendToken: "backend-token"}
	mocks.tokens.EXPECT().Verify("signed.jwt").Return("sess-1", nil)
	mocks.sessions.EXPECT().Get("sess-1").Return(live, true)

	sess, err := service.Authenticate("signed.jwt")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", sess.BackendToken)
}

func TestAuthService_Authenticate_ExpiredSession(t *testing.T) {
	service, mocks := newAuthService(t)

	mocks.tokens.EXPECT().Verify("signed.jwt").Return("sess-1", nil)
	mocks.sessions.EXPECT().Get("sess-1").Return(nil, false)

	_, err := service.Authenticate("signed.jwt")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Logout(t *testing.T) {
	service, mocks := newAuthService(t)

	mocks.tokens.EXPECT().Verify("signed.jwt").Return("sess-1", nil)
	mocks.sessions.EXPECT().Delete("sess-1").Return()

	service.Logout("signed.jwt")
}

func TestAuthService_Logout_BadTokenIsNoop(t *testing.T) {
	service, mocks := newAuthService(t)

	mocks.tokens.EXPECT().Verify("garbage").Return("", errors.New("bad token"))

	service.Logout("garbage")
}
