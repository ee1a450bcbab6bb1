package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"triviaBackend/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with a generated UUID. The password hash is
// stored opaquely; hashing happens upstream. A username already in use is
// reported as ErrConflict and leaves the existing row untouched.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username and password hash are required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	u := &models.User{
		UUID:         uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (uuid, username, password_hash) VALUES (?,?,?)`,
		u.UUID, u.Username, u.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username %q already exists", ErrConflict, username)
		}
		return nil, infra("create user", err)
	}
	return u, nil
}

// GetByUUID fetches a user by identifier.
func (r *UserRepository) GetByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	if userUUID == "" {
		return nil, fmt.Errorf("%w: uuid is required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT uuid, username, password_hash FROM users WHERE uuid = ?`, userUUID).
		Scan(&u.UUID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no user with uuid %s", ErrNotFound, userUUID)
		}
		return nil, infra("get user by uuid", err)
	}
	return &u, nil
}

// GetByUsername fetches a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT uuid, username, password_hash FROM users WHERE username = ?`, username).
		Scan(&u.UUID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no user with username %q", ErrNotFound, username)
		}
		return nil, infra("get user by username", err)
	}
	return &u, nil
}

// Update applies a partial update: only non-nil fields are written. Fields
// are validated upstream before this executes. Renaming onto a taken
// username is ErrConflict; an unknown uuid is ErrNotFound.
func (r *UserRepository) Update(ctx context.Context, userUUID string, username, passwordHash *string) error {
	if userUUID == "" {
		return fmt.Errorf("%w: uuid is required", ErrInvalidArgument)
	}
	if username == nil && passwordHash == nil {
		return fmt.Errorf("%w: no fields to update", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *username)
	}
	if passwordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *passwordHash)
	}
	args = append(args, userUUID)

	res, err := r.db.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE uuid = ?`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %q already exists", ErrConflict, *username)
		}
		return infra("update user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return infra("update user", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: no user with uuid %s", ErrNotFound, userUUID)
	}
	return nil
}

// Delete removes a user by uuid. Idempotent: reports whether a row was
// actually removed.
func (r *UserRepository) Delete(ctx context.Context, userUUID string) (bool, error) {
	if userUUID == "" {
		return false, fmt.Errorf("%w: uuid is required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE uuid = ?`, userUUID)
	if err != nil {
		return false, infra("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra("delete user", err)
	}
	return n > 0, nil
}
