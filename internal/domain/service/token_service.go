// Package service declares the domain service contracts implemented by the
// infrastructure layer.
package service

// TokenService signs and verifies the session tokens handed to dashboard
// clients. The signed token references a server-side session; it carries no
// backend credentials itself.
type TokenService interface {
	// Sign issues a token referencing the given session id.
	Sign(sessionID string) (string, error)

	// Verify checks a token and returns the session id it references.
	Verify(token string) (string, error)
}
