package web

import (
	"encoding/json"
	"net/http"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

type signInRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type signInResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, token, err := s.account.SignIn(r.Context(), req.Email, req.Name)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, signInResponse{User: user, Token: token})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := s.account.SignOut(r.Context(), token); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in domain.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	updated, err := s.account.UpdateProfile(r.Context(), user.ID, in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.account.DeleteAccount(r.Context(), user.ID); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

type statsResponse struct {
	Jobs      *domain.JobStats       `json:"jobs"`
	Equipment *domain.EquipmentStats `json:"equipment"`
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	jobStats, equipStats, err := s.account.UserStatistics(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, statsResponse{Jobs: jobStats, Equipment: equipStats})
}
