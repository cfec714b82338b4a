package middleware

import (
	"net/http"
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/session"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the signed session token to a live session and
// plants the backend token in the request context, where the backend client
// picks it up.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the bearer token and hydrates the session context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "SESSION_INVALID", "Authorization header is missing", "")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "SESSION_INVALID", "Invalid token format, must be Bearer token", "")
		}

		sess, err := m.auth.Authenticate(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "SESSION_INVALID", "Invalid or expired session", "")
		}

		c.Set(string(deliverycontext.KeySession), sess)

		req := c.Request()
		c.SetRequest(req.WithContext(session.WithToken(req.Context(), sess.BackendToken)))

		return next(c)
	}
}

// SessionFromEcho returns the session planted by Authenticate.
func SessionFromEcho(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(string(deliverycontext.KeySession)).(*session.Session)

	return sess, ok
}
