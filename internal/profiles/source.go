// Package profiles provides the profile sources the matcher reads candidates from.
package profiles

import (
	"context"

	"github.com/jonathan/team-matcher/internal/types"
)

// Source supplies profiles to the matcher
type Source interface {
	// Get returns the profile with the given id, or a *NotFoundError
	Get(ctx context.Context, id string) (*types.Profile, error)
	// List returns every profile
	List(ctx context.Context) ([]types.Profile, error)
}

// Store is a Source that can also be written to and remembers dismissed matches
type Store interface {
	Source
	// Create stores a new profile, returning an *ExistsError if the id is taken
	Create(ctx context.Context, profile *types.Profile) error
	// Save creates or replaces a profile
	Save(ctx context.Context, profile *types.Profile) error
	// Delete removes a profile, returning a *NotFoundError if it does not exist
	Delete(ctx context.Context, id string) error
	// Dismiss records that userID no longer wants targetID suggested. It is idempotent.
	Dismiss(ctx context.Context, userID, targetID string) error
	// Dismissed returns the ids userID has dismissed
	Dismissed(ctx context.Context, userID string) (map[string]struct{}, error)
}
