package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"triviaBackend/models"
)

// StatisticsRepository manages per-user counters. Rows are created lazily:
// reading a user's statistics materializes a zero-valued row if none exists.
type StatisticsRepository struct {
	db *sql.DB
}

func NewStatisticsRepository(db *sql.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// Get returns the statistics for a user, creating a zero-valued row first
// if the user has none. The user itself must exist.
func (r *StatisticsRepository) Get(ctx context.Context, userUUID string) (*models.Statistics, error) {
	if userUUID == "" {
		return nil, fmt.Errorf("%w: user uuid is required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.ensure(ctx, userUUID); err != nil {
		return nil, err
	}

	var s models.Statistics
	err := r.db.QueryRowContext(ctx,
		`SELECT user_uuid, xp, wins, losses FROM statistics WHERE user_uuid = ?`, userUUID).
		Scan(&s.UserUUID, &s.XP, &s.Wins, &s.Losses)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// ensure just inserted or found the row; losing it here means a
			// concurrent user deletion.
			return nil, fmt.Errorf("%w: no user with uuid %s", ErrNotFound, userUUID)
		}
		return nil, infra("get statistics", err)
	}
	return &s, nil
}

// Update applies relative increments to a user's counters. The row is
// materialized first if absent, then all deltas land in a single UPDATE so
// concurrent updates cannot lose increments.
func (r *StatisticsRepository) Update(ctx context.Context, userUUID string, xpDelta, winsDelta, lossesDelta int64) error {
	if userUUID == "" {
		return fmt.Errorf("%w: user uuid is required", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.ensure(ctx, userUUID); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE statistics SET xp = xp + ?, wins = wins + ?, losses = losses + ? WHERE user_uuid = ?`,
		xpDelta, winsDelta, lossesDelta, userUUID)
	if err != nil {
		return infra("update statistics", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return infra("update statistics", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: no user with uuid %s", ErrNotFound, userUUID)
	}
	return nil
}

// ensure materializes the zero-valued row without disturbing an existing one.
func (r *StatisticsRepository) ensure(ctx context.Context, userUUID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO statistics (user_uuid) VALUES (?) ON CONFLICT(user_uuid) DO NOTHING`, userUUID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: no user with uuid %s", ErrNotFound, userUUID)
		}
		return infra("ensure statistics", err)
	}
	return nil
}
