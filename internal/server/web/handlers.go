package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/inovacc/gitmsg/internal/model"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// PushResponse is returned by POST /push
type PushResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Synced  int    `json:"synced"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

type createMessageRequest struct {
	Content      string `json:"content"`
	RepositoryID *int64 `json:"repository_id,omitempty"`
}

type registerRepositoryRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// handleIndex serves the single-page UI
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, staticFS, "static/index.html")
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.service.ListMessages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, messages)
}

func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	msg, err := s.service.CreateMessage(r.Context(), req.Content, req.RepositoryID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, msg)
}

func (s *Server) handleListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := s.service.ListRepositories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, repos)
}

func (s *Server) handleRegisterRepository(w http.ResponseWriter, r *http.Request) {
	var req registerRepositoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	repo, err := s.service.RegisterRepository(r.Context(), req.Owner, req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, repo)
}

// handlePush runs a sweep. A store failure is reported in the body as
// success=false rather than as an HTTP error.
func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.SyncAllPending(r.Context())

	resp := PushResponse{
		Success: report.Success,
		Message: "Messages synced successfully",
		Synced:  report.Synced,
		Skipped: report.Skipped,
		Failed:  report.Failed,
	}

	if err != nil {
		s.logger.Error("sweep failed", "error", err, "request_id", RequestID(r.Context()))
		resp.Success = false
		resp.Message = "Sync failed"
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("health check failed", "error", err)
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.jsonError(w, "Not found", http.StatusNotFound)
}

// decodeJSON reads the request body into v, answering 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			s.jsonError(w, "request body is required", http.StatusBadRequest)
			return false
		}

		s.jsonError(w, "invalid JSON body", http.StatusBadRequest)

		return false
	}

	return true
}

// writeError maps domain errors to status codes
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *model.ValidationError
		notFoundErr   *model.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		s.jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		s.jsonError(w, err.Error(), http.StatusNotFound)
	default:
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()),
		)
		s.jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("JSON encode error", "error", err)
	}
}

// jsonError writes a JSON error response
func (s *Server) jsonError(w http.ResponseWriter, message string, status int) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
