package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

type questionTagRequest struct {
	QuestionID int64 `json:"question_id"`
	TagID      int64 `json:"tag_id"`
}

func (s *Server) handleListQuestionTags(w http.ResponseWriter, r *http.Request) {
	pairs, err := s.QuestionTags.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pairs)
}

func (s *Server) handleGetQuestionTag(w http.ResponseWriter, r *http.Request) {
	questionID, tagID, err := pathPair(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	qt, err := s.QuestionTags.Get(r.Context(), questionID, tagID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, qt)
}

// handleCreateQuestionTag associates a tag with a question. A missing
// question or tag is 404 (the message says which side), an existing pair 409.
func (s *Server) handleCreateQuestionTag(w http.ResponseWriter, r *http.Request) {
	var req questionTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	qt, err := s.QuestionTags.Create(r.Context(), req.QuestionID, req.TagID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, qt)
}

func (s *Server) handleDeleteQuestionTag(w http.ResponseWriter, r *http.Request) {
	questionID, tagID, err := pathPair(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	removed, err := s.QuestionTags.Delete(r.Context(), questionID, tagID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeMessage(w, http.StatusNotFound, "question tag not found")
		return
	}
	writeMessage(w, http.StatusOK, "Ok")
}

func pathPair(r *http.Request) (int64, int64, error) {
	questionID, err := pathID(r, "question_id")
	if err != nil {
		return 0, 0, errors.New("invalid question id")
	}
	tagID, err := pathID(r, "tag_id")
	if err != nil {
		return 0, 0, errors.New("invalid tag id")
	}
	return questionID, tagID, nil
}
