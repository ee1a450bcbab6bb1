package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"triviaBackend/models"
)

type questionRequest struct {
	Question   string  `json:"question"`
	Difficulty int     `json:"difficulty"`
	Option1    string  `json:"option1"`
	Option2    string  `json:"option2"`
	Option3    *string `json:"option3"`
	Option4    *string `json:"option4"`
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.Questions.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, errors.New("invalid question id"))
		return
	}
	q, err := s.Questions.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	q, err := models.NewQuestion(req.Question, req.Difficulty, req.Option1, req.Option2, req.Option3, req.Option4)
	if err != nil {
		badRequest(w, err)
		return
	}
	q, err = s.Questions.Create(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, errors.New("invalid question id"))
		return
	}
	removed, err := s.Questions.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeMessage(w, http.StatusNotFound, "question not found")
		return
	}
	writeMessage(w, http.StatusOK, "Ok")
}
