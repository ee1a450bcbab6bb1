package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"triviaBackend/internal/auth"
	"triviaBackend/internal/credentials"
	"triviaBackend/repository"
)

// envelope is the uniform response body: {code, message, data?}.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errForbidden marks owner/permission failures raised by handlers.
var errForbidden = errors.New("forbidden")

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Code: status, Message: http.StatusText(status), Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Code: status, Message: message})
}

func badRequest(w http.ResponseWriter, err error) {
	writeMessage(w, http.StatusBadRequest, err.Error())
}

// writeError maps the error taxonomy onto transport status codes. Anything
// unrecognized is an infrastructure failure: logged, surfaced as a generic
// 500 without internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingAuthorization),
		errors.Is(err, auth.ErrMalformedAuthorization),
		errors.Is(err, credentials.ErrUsernameInvalid),
		errors.Is(err, credentials.ErrPasswordInvalid),
		errors.Is(err, repository.ErrInvalidArgument):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		log.Printf("http error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
