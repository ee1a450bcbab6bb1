// Package auth is the request-time authentication gate: it extracts a
// bearer token from an Authorization header and resolves it to a live
// session. It never mutates session state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"triviaBackend/models"
	"triviaBackend/repository"
)

var (
	// ErrMissingAuthorization: no Authorization header at all. Caller's
	// fault, maps to a bad request rather than an auth failure.
	ErrMissingAuthorization = errors.New("missing authorization header")
	// ErrMalformedAuthorization: header present but not "Bearer <token>".
	ErrMalformedAuthorization = errors.New("malformed authorization header")
	// ErrInvalidToken: well-formed token with no matching session.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// SessionResolver is the one session-store operation the gate needs.
// *repository.SessionRepository satisfies it.
type SessionResolver interface {
	GetByToken(ctx context.Context, token string) (*models.Session, error)
}

var _ SessionResolver = (*repository.SessionRepository)(nil)

// ParseBearer extracts the token from an Authorization header value.
// The header must be exactly two space-separated parts with a "bearer"
// scheme, compared case-insensitively.
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAuthorization
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrMalformedAuthorization
	}
	return parts[1], nil
}

// Authenticate resolves the Authorization header to the owning session.
// An unknown token is ErrInvalidToken; infrastructure failures pass through
// untranslated so callers can distinguish them from auth failures.
func Authenticate(ctx context.Context, header string, sessions SessionResolver) (*models.Session, error) {
	token, err := ParseBearer(header)
	if err != nil {
		return nil, err
	}
	s, err := sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	return s, nil
}

type sessionKey struct{}

// WithSession stores the authenticated session in context.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext retrieves the authenticated session from context (if any).
func FromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*models.Session)
	return s, ok
}
