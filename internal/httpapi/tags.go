package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"triviaBackend/models"
)

type tagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.Tags.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) handleGetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, errors.New("invalid tag id"))
		return
	}
	tag, err := s.Tags.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	tag, err := models.NewTag(req.Name, req.Description)
	if err != nil {
		badRequest(w, err)
		return
	}
	tag, err = s.Tags.Create(r.Context(), tag)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, errors.New("invalid tag id"))
		return
	}
	removed, err := s.Tags.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeMessage(w, http.StatusNotFound, "tag not found")
		return
	}
	writeMessage(w, http.StatusOK, "Ok")
}
