package models

import "errors"

// Question represents a trivia question with two mandatory and up to two
// optional answer options. Option3/Option4 are nullable in the DB; pointers
// distinguish null from empty.
type Question struct {
	ID         int64   `db:"id" json:"id"`
	Question   string  `db:"question" json:"question"`
	Difficulty int     `db:"difficulty" json:"difficulty"`
	Option1    string  `db:"option1" json:"option1"`
	Option2    string  `db:"option2" json:"option2"`
	Option3    *string `db:"option3" json:"option3,omitempty"`
	Option4    *string `db:"option4" json:"option4,omitempty"`
	// TagIDs lists associated tag identifiers. Populated on single-question
	// reads; empty (not nil) when the question has no tags.
	TagIDs []int64 `db:"-" json:"tag_ids"`
}

// NewQuestion builds a Question, enforcing the option invariants: the first
// two options are mandatory, options three and four are optional but cannot
// be set out of order.
func NewQuestion(text string, difficulty int, option1, option2 string, option3, option4 *string) (*Question, error) {
	if text == "" {
		return nil, errors.New("question text is required")
	}
	if option1 == "" || option2 == "" {
		return nil, errors.New("question requires at least two options")
	}
	if option4 != nil && option3 == nil {
		return nil, errors.New("option4 requires option3")
	}
	if (option3 != nil && *option3 == "") || (option4 != nil && *option4 == "") {
		return nil, errors.New("optional options must be non-empty when present")
	}
	return &Question{
		Question:   text,
		Difficulty: difficulty,
		Option1:    option1,
		Option2:    option2,
		Option3:    option3,
		Option4:    option4,
		TagIDs:     []int64{},
	}, nil
}
