package models

import "errors"

// Tag is a category label a question can be associated with.
type Tag struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// NewTag builds a Tag with a mandatory name.
func NewTag(name, description string) (*Tag, error) {
	if name == "" {
		return nil, errors.New("tag name is required")
	}
	return &Tag{Name: name, Description: description}, nil
}

// QuestionTag is the many-to-many link between a question and a tag.
// Both sides must exist before the pair is created; duplicate pairs are
// rejected by the unique composite key.
type QuestionTag struct {
	QuestionID int64 `db:"question_id" json:"question_id"`
	TagID      int64 `db:"tag_id" json:"tag_id"`
}
