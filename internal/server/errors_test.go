package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/team-matcher/internal/matching"
	"github.com/jonathan/team-matcher/internal/profiles"
	"github.com/jonathan/team-matcher/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	validatorErr := (&types.ProfileRequest{}).Validate()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "limit", Message: "bad"}, http.StatusBadRequest},
		{"invalid input", &matching.InvalidInputError{Field: "a.id", Message: "is required"}, http.StatusBadRequest},
		{"validator", validatorErr, http.StatusBadRequest},
		{"not found", &profiles.NotFoundError{ID: "x"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", &profiles.NotFoundError{ID: "x"}), http.StatusNotFound},
		{"conflict", &profiles.ExistsError{ID: "x"}, http.StatusConflict},
		{"wrapped conflict", fmt.Errorf("create: %w", &profiles.ExistsError{ID: "x"}), http.StatusConflict},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: limit - bad", (&ErrValidation{Field: "limit", Message: "bad"}).Error())
}
