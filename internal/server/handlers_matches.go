package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/team-matcher/internal/matching"
	"github.com/jonathan/team-matcher/internal/types"
)

// handleScorePair scores two profiles given in the request body
func (s *Server) handleScorePair(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, r, err)
		return
	}

	result, err := matching.ScorePair(req.A, req.B)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	opts, err := parseRankQuery(r, s.service.Defaults())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	ranked, err := s.service.MatchesFor(r.Context(), r.PathValue("id"), opts)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ranked)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.MatchPair(r.Context(), r.PathValue("id"), r.PathValue("other_id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleDismissMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Dismiss(r.Context(), r.PathValue("id"), r.PathValue("other_id")); err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]bool{"dismissed": true})
}

// parseRankQuery overrides defaults with min_score and limit when the query string carries them
func parseRankQuery(r *http.Request, defaults matching.RankOptions) (matching.RankOptions, error) {
	opts := defaults
	query := r.URL.Query()

	if query.Has("min_score") {
		v := query.Get("min_score")
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return opts, &ErrValidation{Field: "min_score", Message: "must be an integer between 0 and 100"}
		}
		opts.MinScore = n
	}

	if query.Has("limit") {
		v := query.Get("limit")
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"}
		}
		opts.Limit = n
	}

	return opts, nil
}
