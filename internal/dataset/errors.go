// Package dataset loads and validates the resume, job, and label corpora.
package dataset

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// InputError indicates malformed or invalid corpus data.
type InputError struct {
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid input at %s: %s: %v", location, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input at %s: %s", location, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// maxReportedMissing caps how many missing pairs a CoverageError enumerates.
const maxReportedMissing = 10

// CoverageError reports (resume, job) pairs that have no label. Missing lists
// at most maxReportedMissing pairs; TotalMissing is the true count.
type CoverageError struct {
	Missing      []types.PairKey
	TotalMissing int
}

func (e *CoverageError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "label coverage incomplete: %d (resume, job) pairs have no label", e.TotalMissing)
	for _, pair := range e.Missing {
		fmt.Fprintf(&b, "\n  missing: resume=%s job=%s", pair.ResumeID, pair.JobID)
	}
	if e.TotalMissing > len(e.Missing) {
		fmt.Fprintf(&b, "\n  ... and %d more", e.TotalMissing-len(e.Missing))
	}
	return b.String()
}
