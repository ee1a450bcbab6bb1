// Package httpapi wires the JSON-over-HTTP route layer around the
// repositories. Handlers are thin: decode, auth/owner checks, one
// repository call, encode.
package httpapi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"triviaBackend/internal/auth"
	"triviaBackend/internal/config"
	"triviaBackend/repository"
)

// Server holds the repositories the handlers operate on.
type Server struct {
	Users        *repository.UserRepository
	Sessions     *repository.SessionRepository
	Questions    *repository.QuestionRepository
	Tags         *repository.TagRepository
	QuestionTags *repository.QuestionTagRepository
	Statistics   *repository.StatisticsRepository
}

// Routes builds the route table. Question reads and user registration are
// public; everything else requires a live session.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/users", s.handleCreateUser)
	mux.HandleFunc("GET /api/v1/users/{uuid}", s.authed(s.handleGetUser))
	mux.HandleFunc("PATCH /api/v1/users/{uuid}", s.authed(s.handlePatchUser))
	mux.HandleFunc("DELETE /api/v1/users/{uuid}", s.authed(s.handleDeleteUser))

	mux.HandleFunc("POST /api/v1/sessions", s.handleLogin)
	mux.HandleFunc("DELETE /api/v1/sessions", s.authed(s.handleLogout))

	mux.HandleFunc("GET /api/v1/questions", s.handleListQuestions)
	mux.HandleFunc("POST /api/v1/questions", s.handleCreateQuestion)
	mux.HandleFunc("GET /api/v1/questions/{id}", s.handleGetQuestion)
	mux.HandleFunc("DELETE /api/v1/questions/{id}", s.handleDeleteQuestion)

	mux.HandleFunc("GET /api/v1/tags", s.authed(s.handleListTags))
	mux.HandleFunc("POST /api/v1/tags", s.authed(s.handleCreateTag))
	mux.HandleFunc("GET /api/v1/tags/{id}", s.authed(s.handleGetTag))
	mux.HandleFunc("DELETE /api/v1/tags/{id}", s.authed(s.handleDeleteTag))

	mux.HandleFunc("GET /api/v1/question-tags", s.authed(s.handleListQuestionTags))
	mux.HandleFunc("POST /api/v1/question-tags", s.authed(s.handleCreateQuestionTag))
	mux.HandleFunc("GET /api/v1/question-tags/{question_id}/{tag_id}", s.authed(s.handleGetQuestionTag))
	mux.HandleFunc("DELETE /api/v1/question-tags/{question_id}/{tag_id}", s.authed(s.handleDeleteQuestionTag))

	mux.HandleFunc("GET /api/v1/statistics", s.authed(s.handleGetStatistics))
	mux.HandleFunc("PATCH /api/v1/statistics", s.authed(s.handlePatchStatistics))

	return mux
}

// authed gates a handler behind the bearer-token auth gate and injects the
// resolved session into the request context.
func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := auth.Authenticate(r.Context(), r.Header.Get("Authorization"), s.Sessions)
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r.WithContext(auth.WithSession(r.Context(), sess)))
	}
}

// pathID parses an integer path segment.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// StartHTTP starts the HTTP server on the configured address and returns a
// shutdown function that drains in-flight requests until its context expires.
func StartHTTP(cfg *config.Config, s *Server) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":8080"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:      s.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	}, nil
}
