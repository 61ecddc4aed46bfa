// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LabelScale identifies which relevance-label convention a label source uses.
// The two scales coexist in this system and are NOT interchangeable: the
// relevance threshold, the neutral fallback label, and the NDCG gain function
// all depend on which scale is in force.
type LabelScale string

const (
	// ScaleGraded is the 0-3 scale used by the basic evaluation harness.
	ScaleGraded LabelScale = "0-3"
	// ScaleWeak is the 1-5 scale used by LLM weak labels and the ablation harness.
	ScaleWeak LabelScale = "1-5"
)

// Min returns the lowest valid label on the scale.
func (s LabelScale) Min() int {
	if s == ScaleWeak {
		return 1
	}
	return 0
}

// Max returns the highest valid label on the scale.
func (s LabelScale) Max() int {
	if s == ScaleWeak {
		return 5
	}
	return 3
}

// Contains reports whether label is a valid value on the scale.
func (s LabelScale) Contains(label int) bool {
	return label >= s.Min() && label <= s.Max()
}

// RelevantThreshold returns the minimum label considered "relevant" for
// Precision@K on this scale (>= 2 on 0-3, >= 4 on 1-5).
func (s LabelScale) RelevantThreshold() int {
	if s == ScaleWeak {
		return 4
	}
	return 2
}

// NeutralLabel returns the defined neutral fallback label used when label
// generation fails (1 on 0-3, 2 on 1-5).
func (s LabelScale) NeutralLabel() int {
	if s == ScaleWeak {
		return 2
	}
	return 1
}

// NeutralConfidence is the confidence attached to a neutral fallback label.
// A low value marks the record as needing manual review.
const NeutralConfidence = 0.3

// ExponentialGain reports whether NDCG on this scale uses the exponential
// gain form (2^rel - 1) instead of linear gain. The 1-5 weak-label harness
// uses exponential gain; the 0-3 harness uses linear gain.
func (s LabelScale) ExponentialGain() bool {
	return s == ScaleWeak
}

// LabelRecord is one relevance judgment for a (resume, job) pair.
type LabelRecord struct {
	ResumeID   string   `json:"resume_id" validate:"required"`
	JobID      string   `json:"job_id" validate:"required"`
	Label      int      `json:"label"`
	Confidence float64  `json:"confidence" validate:"gte=0,lte=1"`
	Evidence   []string `json:"evidence,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Validate checks the record's required fields and that the label fits the scale.
func (l *LabelRecord) Validate(scale LabelScale) error {
	validate := validator.New()
	if err := validate.Struct(l); err != nil {
		return err
	}
	if !scale.Contains(l.Label) {
		return fmt.Errorf("label %d out of range for scale %s", l.Label, scale)
	}
	return nil
}

// PairKey identifies a (resume, job) pair in caches and lookups.
type PairKey struct {
	ResumeID string
	JobID    string
}
