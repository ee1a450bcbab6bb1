package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"triviaBackend/internal/auth"
	"triviaBackend/internal/credentials"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin exchanges credentials for a session token. An unknown user is
// 404, a wrong password 403 (original behavior, not collapsed into 401).
// Logging in while a session exists rotates the token in place.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	if req.Username == "" || req.Password == "" {
		badRequest(w, errors.New("username and password are required"))
		return
	}
	u, err := s.Users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	if !credentials.VerifyPassword(req.Password, u.PasswordHash) {
		writeError(w, fmt.Errorf("%w: incorrect password", errForbidden))
		return
	}
	sess, err := s.Sessions.Create(r.Context(), u.UUID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// handleLogout revokes the presented token.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrInvalidToken)
		return
	}
	removed, err := s.Sessions.DeleteByToken(r.Context(), sess.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeMessage(w, http.StatusNotFound, "session not found")
		return
	}
	writeMessage(w, http.StatusOK, "Ok")
}
