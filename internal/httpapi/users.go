package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"triviaBackend/internal/auth"
	"triviaBackend/internal/credentials"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// handleCreateUser registers a new user. Public: this is the only way to
// get an account. 400 on policy violations, 409 when the username is taken.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	if err := credentials.ValidateUsername(req.Username); err != nil {
		writeError(w, err)
		return
	}
	if err := credentials.ValidatePassword(req.Password); err != nil {
		writeError(w, err)
		return
	}
	hash, err := credentials.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := s.Users.Create(r.Context(), req.Username, hash)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// requireOwner checks that the authenticated session owns the uuid in the
// request path.
func requireOwner(r *http.Request) (string, error) {
	userUUID := r.PathValue("uuid")
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		return "", auth.ErrInvalidToken
	}
	if sess.UserUUID != userUUID {
		return "", fmt.Errorf("%w: user does not have permission", errForbidden)
	}
	return userUUID, nil
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userUUID, err := requireOwner(r)
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := s.Users.GetByUUID(r.Context(), userUUID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handlePatchUser applies a partial update: only the provided fields
// change, each validated independently before anything is written.
func (s *Server) handlePatchUser(w http.ResponseWriter, r *http.Request) {
	userUUID, err := requireOwner(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, errors.New("invalid json"))
		return
	}
	if req.Username != nil {
		if err := credentials.ValidateUsername(*req.Username); err != nil {
			writeError(w, err)
			return
		}
	}
	var passwordHash *string
	if req.Password != nil {
		if err := credentials.ValidatePassword(*req.Password); err != nil {
			writeError(w, err)
			return
		}
		hash, err := credentials.HashPassword(*req.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		passwordHash = &hash
	}
	if err := s.Users.Update(r.Context(), userUUID, req.Username, passwordHash); err != nil {
		writeError(w, err)
		return
	}
	u, err := s.Users.GetByUUID(r.Context(), userUUID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userUUID, err := requireOwner(r)
	if err != nil {
		writeError(w, err)
		return
	}
	removed, err := s.Users.Delete(r.Context(), userUUID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	writeMessage(w, http.StatusOK, "Ok")
}
