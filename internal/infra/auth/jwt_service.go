// Package auth provides the concrete implementation of the session token
// service.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"backoffice/config"
	"backoffice/internal/domain/service"
)

// jwtService signs session references as HMAC JWTs. The claims carry only
// the server-side session id; the backend API token never leaves the server.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Sign issues a token referencing the given session id.
func (s *jwtService) Sign(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks a token and returns the session id it references.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	sessionID, ok := claims["sub"].(string)
	if !ok || sessionID == "" {
		return "", jwt.ErrTokenInvalidSubject
	}

	return sessionID, nil
}
