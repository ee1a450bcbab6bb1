package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"triviaBackend/models"
)

// SessionRepository manages the one-session-per-user table. Tokens are
// opaque random UUIDs; a session is live until deleted or replaced.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create issues a session for the user. Upsert semantics: if the user
// already holds a session, its token and timestamp are replaced in place,
// invalidating the old token; no second row is ever created.
func (r *SessionRepository) Create(ctx context.Context, userUUID string) (*models.Session, error) {
	if userUUID == "" {
		return nil, fmt.Errorf("%w: user uuid is required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	s := &models.Session{
		UserUUID:  userUUID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (user_uuid, token, created_at) VALUES (?,?,?)
		 ON CONFLICT(user_uuid) DO UPDATE SET token = excluded.token, created_at = excluded.created_at`,
		s.UserUUID, s.Token, s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: no user with uuid %s", ErrNotFound, userUUID)
		}
		return nil, infra("create session", err)
	}
	return s, nil
}

// GetByUser resolves the session owned by the given user.
func (r *SessionRepository) GetByUser(ctx context.Context, userUUID string) (*models.Session, error) {
	if userUUID == "" {
		return nil, fmt.Errorf("%w: user uuid is required", ErrInvalidArgument)
	}
	return r.get(ctx, `SELECT user_uuid, token, created_at FROM sessions WHERE user_uuid = ?`, userUUID)
}

// GetByToken resolves the session carrying the given token.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidArgument)
	}
	return r.get(ctx, `SELECT user_uuid, token, created_at FROM sessions WHERE token = ?`, token)
}

func (r *SessionRepository) get(ctx context.Context, query, arg string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var s models.Session
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&s.UserUUID, &s.Token, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no matching session", ErrNotFound)
		}
		return nil, infra("get session", err)
	}
	return &s, nil
}

// DeleteByUser revokes the session owned by the given user. Idempotent:
// reports whether a row was actually removed.
func (r *SessionRepository) DeleteByUser(ctx context.Context, userUUID string) (bool, error) {
	if userUUID == "" {
		return false, fmt.Errorf("%w: user uuid is required", ErrInvalidArgument)
	}
	return r.delete(ctx, `DELETE FROM sessions WHERE user_uuid = ?`, userUUID)
}

// DeleteByToken revokes the session carrying the given token. Idempotent:
// reports whether a row was actually removed.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("%w: token is required", ErrInvalidArgument)
	}
	return r.delete(ctx, `DELETE FROM sessions WHERE token = ?`, token)
}

func (r *SessionRepository) delete(ctx context.Context, query, arg string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		return false, infra("delete session", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra("delete session", err)
	}
	return n > 0, nil
}
