package repository

import (
	"context"
	"database/sql"
	"fmt"

	"triviaBackend/models"
)

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question. Option invariants (two mandatory, up to
// two optional) are enforced by the models.NewQuestion constructor.
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: question is nil", ErrInvalidArgument)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (question, difficulty, option1, option2, option3, option4) VALUES (?,?,?,?,?,?)`,
		q.Question, q.Difficulty, q.Option1, q.Option2, q.Option3, q.Option4)
	if err != nil {
		return nil, infra("create question", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, infra("create question", err)
	}
	q.ID = id
	if q.TagIDs == nil {
		q.TagIDs = []int64{}
	}
	return q, nil
}

// GetByID fetches a question together with its associated tag ids in one
// join. A question with no tags yields an empty, non-nil TagIDs slice.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT q.id, q.question, q.difficulty, q.option1, q.option2, q.option3, q.option4, qt.tag_id
		 FROM questions q
		 LEFT JOIN question_tags qt ON qt.question_id = q.id
		 WHERE q.id = ?
		 ORDER BY qt.tag_id`, id)
	if err != nil {
		return nil, infra("get question", err)
	}
	defer rows.Close()

	var q *models.Question
	for rows.Next() {
		var row models.Question
		var tagID sql.NullInt64
		if err := rows.Scan(&row.ID, &row.Question, &row.Difficulty, &row.Option1, &row.Option2, &row.Option3, &row.Option4, &tagID); err != nil {
			return nil, infra("get question", err)
		}
		if q == nil {
			row.TagIDs = []int64{}
			q = &row
		}
		if tagID.Valid {
			q.TagIDs = append(q.TagIDs, tagID.Int64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra("get question", err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: no question with id %d", ErrNotFound, id)
	}
	return q, nil
}

// List returns all questions, without tag assembly.
func (r *QuestionRepository) List(ctx context.Context) ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, difficulty, option1, option2, option3, option4 FROM questions ORDER BY id`)
	if err != nil {
		return nil, infra("list questions", err)
	}
	defer rows.Close()

	out := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Difficulty, &q.Option1, &q.Option2, &q.Option3, &q.Option4); err != nil {
			return nil, infra("list questions", err)
		}
		q.TagIDs = []int64{}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("list questions", err)
	}
	return out, nil
}

// Delete removes a question by id. Idempotent: reports whether a row was
// actually removed. Associated question_tags rows cascade.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return false, infra("delete question", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra("delete question", err)
	}
	return n > 0, nil
}
