// Package types provides type definitions for structured data used throughout the team-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProfileBank represents a collection of profiles loaded from a JSON file
type ProfileBank struct {
	Profiles []Profile `json:"profiles"`
}

// Profile represents a user's skills, goals, work style and experience record
type Profile struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name"`
	Title        string  `json:"title,omitempty"`
	Bio          string  `json:"bio,omitempty"`
	Skills       Tags    `json:"skills"`
	Goals        Tags    `json:"goals"`
	WorkStyle    Tags    `json:"work_style"`
	Experience   float64 `json:"experience" validate:"gte=0"`
	Availability string  `json:"availability,omitempty"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Clone returns a deep copy of the profile so callers can hand it out without sharing slices.
func (p Profile) Clone() Profile {
	p.Skills = p.Skills.Clone()
	p.Goals = p.Goals.Clone()
	p.WorkStyle = p.WorkStyle.Clone()
	return p
}

// Tags is a list of categorical labels.
// It decodes from either a JSON array of strings or a single JSON string,
// which older profile documents use for work_style.
type Tags []string

// UnmarshalJSON accepts `"remote"`, `["remote", "async"]` and `null`.
func (t *Tags) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	if data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("failed to decode tag: %w", err)
		}
		if single == "" {
			*t = Tags{}
			return nil
		}
		*t = Tags{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to decode tag list: %w", err)
	}
	*t = list
	return nil
}

// MarshalJSON always encodes as an array, never null.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Clone returns a copy of the tags.
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	copy(out, t)
	return out
}
