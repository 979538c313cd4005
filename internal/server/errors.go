package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/team-matcher/internal/matching"
	"github.com/jonathan/team-matcher/internal/profiles"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var invalidInput *matching.InvalidInputError
	var fieldErrs validator.ValidationErrors
	var notFound *profiles.NotFoundError
	var conflict *profiles.ExistsError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidInput), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
