// Package types provides type definitions for structured data used throughout the team-matcher system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents an ad hoc request to score two profiles.
// Both profiles are validated as nested structs.
type ScoreRequest struct {
	A Profile `json:"a"`
	B Profile `json:"b"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ProfileRequest represents the body of a profile create or update.
// ID is optional on create and ignored on update (the path wins).
type ProfileRequest struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name" validate:"required,min=1"`
	Title        string   `json:"title,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       Tags     `json:"skills" validate:"dive,required"`
	Goals        Tags     `json:"goals" validate:"dive,required"`
	WorkStyle    Tags     `json:"work_style" validate:"dive,required"`
	Experience   *float64 `json:"experience" validate:"required,gte=0"`
	Availability string   `json:"availability,omitempty"`
}

// Validate validates the ProfileRequest using the validator.
func (r *ProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ToProfile converts the request into a Profile with the given id.
func (r *ProfileRequest) ToProfile(id string) Profile {
	p := Profile{
		ID:           id,
		Name:         r.Name,
		Title:        r.Title,
		Bio:          r.Bio,
		Skills:       r.Skills.Clone(),
		Goals:        r.Goals.Clone(),
		WorkStyle:    r.WorkStyle.Clone(),
		Availability: r.Availability,
	}
	if r.Experience != nil {
		p.Experience = *r.Experience
	}
	return p
}
