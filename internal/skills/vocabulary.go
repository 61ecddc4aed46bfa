// Package skills provides the canonical skill vocabulary and skill normalization utilities.
package skills

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Vocabulary is a set of canonical skill strings, keyed case-insensitively.
// It is immutable; ExpandWithJobSkills returns a new Vocabulary rather than
// mutating the receiver, so expansion is always scoped to the caller that
// requested it.
type Vocabulary struct {
	terms []string          // canonical casings, insertion order
	index map[string]string // lowercased term -> canonical casing
}

// New builds a vocabulary from the given terms. Duplicate terms (case-insensitive)
// keep the casing of their first appearance.
func New(terms []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]string, len(terms))}
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		lower := strings.ToLower(term)
		if _, exists := v.index[lower]; exists {
			continue
		}
		v.index[lower] = term
		v.terms = append(v.terms, term)
	}
	return v
}

// Load reads a vocabulary from a text file with one term per line.
// Blank lines and lines starting with '#' are skipped.
func Load(path string) (*Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open vocabulary file %s", path),
			Cause:   err,
		}
	}
	defer file.Close()

	var terms []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read vocabulary file %s", path),
			Cause:   err,
		}
	}

	return New(terms), nil
}

// Len returns the number of terms in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns the canonical terms in insertion order.
// The returned slice must not be modified.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Canonical returns the vocabulary casing for a term, matching case-insensitively.
func (v *Vocabulary) Canonical(term string) (string, bool) {
	canonical, ok := v.index[strings.ToLower(strings.TrimSpace(term))]
	return canonical, ok
}

// Contains reports whether the term is in the vocabulary (case-insensitive).
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.Canonical(term)
	return ok
}

// Normalize maps free-text skills onto the vocabulary, returning the set of
// canonical forms. Matching is case-insensitive and exact-string.
//
// Normalize is lossy: skills not found in the vocabulary are dropped
// silently, so unknown skills never contribute to overlap or gap calculations
// unless the vocabulary is expanded first.
func (v *Vocabulary) Normalize(skillList []string) map[string]bool {
	normalized := make(map[string]bool)
	for _, skill := range skillList {
		if canonical, ok := v.Canonical(skill); ok {
			normalized[canonical] = true
		}
	}
	return normalized
}

// ExpandWithJobSkills returns a new vocabulary containing every term of the
// receiver plus every skill string literally present in the given jobs.
// Dedup against existing entries is case-insensitive; newly added terms keep
// the job's original casing. Expanding an already-expanded vocabulary with the
// same jobs again is a no-op (idempotent).
func (v *Vocabulary) ExpandWithJobSkills(jobs []types.JobPosting) *Vocabulary {
	combined := make([]string, 0, len(v.terms))
	combined = append(combined, v.terms...)
	for _, job := range jobs {
		combined = append(combined, job.Skills...)
	}
	return New(combined)
}
