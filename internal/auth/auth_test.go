package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"triviaBackend/models"
	"triviaBackend/repository"
)

type fakeResolver struct {
	sessions map[string]*models.Session
	err      error
}

func (f *fakeResolver) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: no matching session", repository.ErrNotFound)
}

func TestParseBearer(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		token   string
		wantErr error
	}{
		{"valid", "Bearer abc123", "abc123", nil},
		{"lowercase scheme", "bearer abc123", "abc123", nil},
		{"mixed case scheme", "BeArEr abc123", "abc123", nil},
		{"missing header", "", "", ErrMissingAuthorization},
		{"no scheme", "abc123", "", ErrMalformedAuthorization},
		{"wrong scheme", "Basic abc123", "", ErrMalformedAuthorization},
		{"too many parts", "Bearer abc 123", "", ErrMalformedAuthorization},
		{"empty token", "Bearer ", "", ErrMalformedAuthorization},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ParseBearer(tc.header)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if token != tc.token {
				t.Fatalf("token = %q, want %q", token, tc.token)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	resolver := &fakeResolver{sessions: map[string]*models.Session{
		"good-token": {UserUUID: "user-1", Token: "good-token"},
	}}

	s, err := Authenticate(ctx, "Bearer good-token", resolver)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if s.UserUUID != "user-1" {
		t.Fatalf("wrong session owner: %+v", s)
	}

	if _, err := Authenticate(ctx, "Bearer unknown", resolver); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unknown token: err = %v, want ErrInvalidToken", err)
	}
	if _, err := Authenticate(ctx, "abc", resolver); !errors.Is(err, ErrMalformedAuthorization) {
		t.Fatalf("no scheme: err = %v, want ErrMalformedAuthorization", err)
	}
	if _, err := Authenticate(ctx, "", resolver); !errors.Is(err, ErrMissingAuthorization) {
		t.Fatalf("missing header: err = %v, want ErrMissingAuthorization", err)
	}
}

func TestAuthenticate_InfrastructureErrorPassesThrough(t *testing.T) {
	resolver := &fakeResolver{err: fmt.Errorf("get session: %w", repository.ErrUnavailable)}
	_, err := Authenticate(context.Background(), "Bearer x", resolver)
	if !errors.Is(err, repository.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable passthrough", err)
	}
	if errors.Is(err, ErrInvalidToken) {
		t.Fatalf("infrastructure failure must not look like an auth failure")
	}
}

func TestSessionContextRoundTrip(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("expected no session in empty context")
	}
	s := &models.Session{UserUUID: "user-1", Token: "tok"}
	ctx := WithSession(context.Background(), s)
	got, ok := FromContext(ctx)
	if !ok || got.Token != "tok" {
		t.Fatalf("session not round-tripped: %v %+v", ok, got)
	}
}
