package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/team-matcher/internal/types"
)

// InvalidInputError indicates a profile pair that violates the scoring contract
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
}

// ValidatePair checks the caller contract for scoring a and b:
// both ids present and distinct, and experience finite and non-negative.
func ValidatePair(a, b types.Profile) error {
	if err := validateProfile("a", a); err != nil {
		return err
	}
	if err := validateProfile("b", b); err != nil {
		return err
	}
	if a.ID == b.ID {
		return &InvalidInputError{Field: "id", Message: fmt.Sprintf("cannot match profile %s with itself", a.ID)}
	}
	return nil
}

func validateProfile(side string, p types.Profile) error {
	if p.ID == "" {
		return &InvalidInputError{Field: side + ".id", Message: "is required"}
	}
	if math.IsNaN(p.Experience) || math.IsInf(p.Experience, 0) {
		return &InvalidInputError{Field: side + ".experience", Message: "must be a finite number"}
	}
	if p.Experience < 0 {
		return &InvalidInputError{Field: side + ".experience", Message: "must be non-negative"}
	}
	return nil
}
