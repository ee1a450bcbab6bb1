package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"triviaBackend/internal/auth"
)

type statisticsRequest struct {
	Correct bool `json:"correct"`
}

// handleGetStatistics returns the caller's counters, materializing a
// zero-valued row on first read.
func (s *Server) handleGetStatistics(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrInvalidToken)
		return
	}
	stats, err := s.Statistics.Get(r.Context(), sess.UserUUID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handlePatchStatistics records one answered question: a correct answer is
// worth 10 xp and a win, an incorrect one 2 xp and a loss.
func (s *Server) handlePatchStatistics(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrInvalidToken)
		return
	}
	var req statisticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	var xp, wins, losses int64
	if req.Correct {
		xp, wins, losses = 10, 1, 0
	} else {
		xp, wins, losses = 2, 0, 1
	}
	if err := s.Statistics.Update(r.Context(), sess.UserUUID, xp, wins, losses); err != nil {
		writeError(w, err)
		return
	}
	stats, err := s.Statistics.Get(r.Context(), sess.UserUUID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
