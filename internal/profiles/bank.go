package profiles

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/team-matcher/internal/types"
)

// LoadBank loads a profile bank from a JSON file.
// Profiles without an id are assigned a random UUID; duplicate ids are rejected.
func LoadBank(path string) (*types.ProfileBank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var bank types.ProfileBank
	if err := json.Unmarshal(content, &bank); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	seen := make(map[string]bool, len(bank.Profiles))
	for i := range bank.Profiles {
		p := &bank.Profiles[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if seen[p.ID] {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate profile id %q", p.ID)}
		}
		seen[p.ID] = true

		if err := p.Validate(); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid profile %q", p.ID),
				Cause:   err,
			}
		}
	}

	return &bank, nil
}

// LoadMemoryStore loads a bank file into a fresh MemoryStore.
func LoadMemoryStore(path string) (*MemoryStore, error) {
	bank, err := LoadBank(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(bank.Profiles), nil
}
