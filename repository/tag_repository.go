package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"triviaBackend/models"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a new tag.
func (r *TagRepository) Create(ctx context.Context, t *models.Tag) (*models.Tag, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: tag is nil", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO tags (name, description) VALUES (?,?)`, t.Name, t.Description)
	if err != nil {
		return nil, infra("create tag", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, infra("create tag", err)
	}
	t.ID = id
	return t, nil
}

// GetByID fetches a tag by id.
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var t models.Tag
	err := r.db.QueryRowContext(ctx, `SELECT id, name, description FROM tags WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no tag with id %d", ErrNotFound, id)
		}
		return nil, infra("get tag", err)
	}
	return &t, nil
}

// List returns all tags.
func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM tags ORDER BY id`)
	if err != nil {
		return nil, infra("list tags", err)
	}
	defer rows.Close()

	out := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, infra("list tags", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("list tags", err)
	}
	return out, nil
}

// Delete removes a tag by id. Idempotent: reports whether a row was
// actually removed. Associated question_tags rows cascade.
func (r *TagRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return false, infra("delete tag", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra("delete tag", err)
	}
	return n > 0, nil
}
