// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// JobPosting represents a job posting loaded from the corpus.
// Instances are immutable once loaded; all core components consume them read-only.
type JobPosting struct {
	JobID            string   `json:"job_id,omitempty"`
	Title            string   `json:"title" validate:"required"`
	Responsibilities string   `json:"responsibilities" validate:"required"`
	RequirementsText string   `json:"requirements_text" validate:"required"`
	Skills           []string `json:"skills" validate:"required"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Level            string   `json:"level,omitempty"`
}

// Validate checks that the job posting has the required fields.
// JobID is optional here; callers that need it (evaluation) must check separately.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
