package impl

import (
	"context"
	"log/slog"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/domain/session"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const loginSuccessFallback = "Login successful!"

type authService struct {
	authRepo repository.AuthRepository
	sessions session.Store
	tokens   service.TokenService
	config   *config.Config
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AuthRepo repository.AuthRepository
	Sessions session.Store
	Tokens   service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService creates the auth usecase.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		authRepo: params.AuthRepo,
		sessions: params.Sessions,
		tokens:   params.Tokens,
		config:   params.Config,
		logger:   params.Logger,
	}
}

// Login short-circuits on missing fields: no request leaves the service
// until both are present.
func (s *authService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	if email == "" || password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	credentials, err := s.authRepo.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.openSession(credentials, email)
}

// Register validates the four-field form, one error per missing field,
// before any request.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.LoginResult, error) {
	fields := map[string]string{}
	if input.Name == "" {
		fields["name"] = "Name is required"
	}
	if input.Email == "" {
		fields["email"] = "Email is required"
	}
	if input.Password == "" {
		fields["password"] = "Password is required"
	}
	if input.Role == "" {
		fields["role"] = "Role is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	credentials, err := s.authRepo.Register(ctx, &repository.Registration{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(credentials, input.Email)
}

func (s *authService) Logout(token string) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return
	}

	s.sessions.Delete(id)
}

func (s *authService) Authenticate(token string) (*session.Session, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	return sess, nil
}

// openSession stores the backend token server-side and signs a reference to
// the session for the client.
func (s *authService) openSession(credentials *repository.Credentials, email string) (*usecase.LoginResult, error) {
	sess := s.sessions.Create(credentials.Token, email)

	signed, err := s.tokens.Sign(sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)

		return nil, errors.Wrap(err, "sign session token")
	}

	message := credentials.Message
	if message == "" {
		message = loginSuccessFallback
	}

	return &usecase.LoginResult{
		Token:         signed,
		Message:       message,
		RedirectPath:  s.config.Dashboard.RedirectPath,
		RedirectDelay: s.config.Dashboard.RedirectDelay,
	}, nil
}
