package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mrmoe28/solarscheduler/internal/domain"
	"github.com/mrmoe28/solarscheduler/internal/service"
	"github.com/mrmoe28/solarscheduler/internal/store"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Data: data}); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Error: msg}); err != nil {
		s.logger.Error("failed to encode error response", "error", err)
	}
}

// writeServiceError maps service-layer failures onto HTTP statuses:
// validation 400, unknown record 404, revoked/invalid auth 401, anything
// else 500 with the detail kept server-side.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrUnauthorized):
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		s.logger.Error("request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
