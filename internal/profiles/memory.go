package profiles

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/team-matcher/internal/types"
)

// MemoryStore is an in-process Store. It hands out copies, so callers may modify what they receive.
type MemoryStore struct {
	mu        sync.RWMutex
	profiles  map[string]types.Profile
	dismissed map[string]map[string]struct{}
}

// NewMemoryStore creates a store seeded with the given profiles
func NewMemoryStore(seed []types.Profile) *MemoryStore {
	s := &MemoryStore{
		profiles:  make(map[string]types.Profile, len(seed)),
		dismissed: make(map[string]map[string]struct{}),
	}
	for _, p := range seed {
		s.profiles[p.ID] = p.Clone()
	}
	return s
}

// Get returns a copy of the profile with the given id
func (s *MemoryStore) Get(_ context.Context, id string) (*types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	clone := p.Clone()
	return &clone, nil
}

// List returns copies of all profiles ordered by id
func (s *MemoryStore) List(_ context.Context) ([]types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Create stores profile unless its id is already present
func (s *MemoryStore) Create(_ context.Context, profile *types.Profile) error {
	if profile == nil || profile.ID == "" {
		return fmt.Errorf("profile id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profile.ID]; ok {
		return &ExistsError{ID: profile.ID}
	}
	s.profiles[profile.ID] = profile.Clone()
	return nil
}

// Save creates or replaces a profile
func (s *MemoryStore) Save(_ context.Context, profile *types.Profile) error {
	if profile == nil || profile.ID == "" {
		return fmt.Errorf("profile id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.ID] = profile.Clone()
	return nil
}

// Delete removes a profile along with every dismissal that names it
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.profiles, id)
	delete(s.dismissed, id)
	for _, set := range s.dismissed {
		delete(set, id)
	}
	return nil
}

// Dismiss records that userID dismissed targetID
func (s *MemoryStore) Dismiss(_ context.Context, userID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.dismissed[userID]
	if !ok {
		set = make(map[string]struct{})
		s.dismissed[userID] = set
	}
	set[targetID] = struct{}{}
	return nil
}

// Dismissed returns a copy of userID's dismissed set
func (s *MemoryStore) Dismissed(_ context.Context, userID string) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.dismissed[userID]))
	for id := range s.dismissed[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}
