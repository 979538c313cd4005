package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/team-matcher/internal/types"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON request body into v, answering 400 itself on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if list == nil {
		list = []types.Profile{}
	}

	s.jsonResponse(w, http.StatusOK, types.ProfileBank{Profiles: list})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, r, err)
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	profile := req.ToProfile(id)
	if err := s.store.Create(r.Context(), &profile); err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, profile)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces the profile at the path id, creating it if needed
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, r, err)
		return
	}

	profile := req.ToProfile(r.PathValue("id"))
	if err := s.store.Save(r.Context(), &profile); err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
