package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"triviaBackend/models"
)

// QuestionTagRepository manages the question/tag association table, the one
// place with real referential logic: both sides must exist before a pair is
// created, and duplicate pairs are rejected rather than merged.
type QuestionTagRepository struct {
	db *sql.DB
}

func NewQuestionTagRepository(db *sql.DB) *QuestionTagRepository {
	return &QuestionTagRepository{db: db}
}

// Create associates a tag with a question. Each side is verified before the
// insert so a missing question and a missing tag produce distinct NotFound
// contexts; a pair that already exists is ErrConflict.
func (r *QuestionTagRepository) Create(ctx context.Context, questionID, tagID int64) (*models.QuestionTag, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM questions WHERE id = ?)`, questionID).Scan(&exists); err != nil {
		return nil, infra("create question tag", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no question with id %d", ErrNotFound, questionID)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM tags WHERE id = ?)`, tagID).Scan(&exists); err != nil {
		return nil, infra("create question tag", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no tag with id %d", ErrNotFound, tagID)
	}

	_, err := r.db.ExecContext(ctx, `INSERT INTO question_tags (question_id, tag_id) VALUES (?,?)`, questionID, tagID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: question %d already tagged with %d", ErrConflict, questionID, tagID)
		}
		// The existence probes and the insert are separate statements, so a
		// concurrent delete can still surface here as an FK violation.
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: question %d or tag %d no longer exists", ErrNotFound, questionID, tagID)
		}
		return nil, infra("create question tag", err)
	}
	return &models.QuestionTag{QuestionID: questionID, TagID: tagID}, nil
}

// Get fetches a single association pair.
func (r *QuestionTagRepository) Get(ctx context.Context, questionID, tagID int64) (*models.QuestionTag, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var qt models.QuestionTag
	err := r.db.QueryRowContext(ctx,
		`SELECT question_id, tag_id FROM question_tags WHERE question_id = ? AND tag_id = ?`, questionID, tagID).
		Scan(&qt.QuestionID, &qt.TagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no association for question %d and tag %d", ErrNotFound, questionID, tagID)
		}
		return nil, infra("get question tag", err)
	}
	return &qt, nil
}

// List returns all association pairs.
func (r *QuestionTagRepository) List(ctx context.Context) ([]models.QuestionTag, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT question_id, tag_id FROM question_tags ORDER BY question_id, tag_id`)
	if err != nil {
		return nil, infra("list question tags", err)
	}
	defer rows.Close()

	out := []models.QuestionTag{}
	for rows.Next() {
		var qt models.QuestionTag
		if err := rows.Scan(&qt.QuestionID, &qt.TagID); err != nil {
			return nil, infra("list question tags", err)
		}
		out = append(out, qt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("list question tags", err)
	}
	return out, nil
}

// Delete removes an association pair. Idempotent: reports whether a row was
// actually removed.
func (r *QuestionTagRepository) Delete(ctx context.Context, questionID, tagID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM question_tags WHERE question_id = ? AND tag_id = ?`, questionID, tagID)
	if err != nil {
		return false, infra("delete question tag", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra("delete question tag", err)
	}
	return n > 0, nil
}
