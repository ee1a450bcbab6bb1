package models

import "testing"

func strptr(s string) *string { return &s }

func TestNewQuestion_Valid(t *testing.T) {
	q, err := NewQuestion("What is 2+2?", 1, "4", "5", strptr("6"), nil)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if q.TagIDs == nil || len(q.TagIDs) != 0 {
		t.Fatalf("expected empty non-nil TagIDs, got %#v", q.TagIDs)
	}
}

func TestNewQuestion_Invalid(t *testing.T) {
	cases := []struct {
		name             string
		text             string
		option1, option2 string
		option3, option4 *string
	}{
		{"empty text", "", "a", "b", nil, nil},
		{"missing option1", "q", "", "b", nil, nil},
		{"missing option2", "q", "a", "", nil, nil},
		{"option4 without option3", "q", "a", "b", nil, strptr("d")},
		{"empty option3", "q", "a", "b", strptr(""), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewQuestion(tc.text, 1, tc.option1, tc.option2, tc.option3, tc.option4); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewTag_RequiresName(t *testing.T) {
	if _, err := NewTag("", "desc"); err == nil {
		t.Fatalf("expected error for empty name")
	}
	tag, err := NewTag("history", "")
	if err != nil || tag.Name != "history" {
		t.Fatalf("NewTag: %v %+v", err, tag)
	}
}
