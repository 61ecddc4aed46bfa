// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Resume represents a candidate resume loaded from the corpus.
// Instances are immutable once loaded; all core components consume them read-only.
type Resume struct {
	ResumeID   string   `json:"resume_id,omitempty"`
	Education  string   `json:"education" validate:"required"`
	Projects   string   `json:"projects"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills" validate:"required"`
}

// Validate checks that the resume has the required fields.
// ResumeID is optional here; callers that need it (evaluation) must check separately.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
