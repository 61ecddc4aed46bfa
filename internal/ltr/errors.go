// Package ltr implements pairwise learning-to-rank with a linear model.
package ltr

import (
	"fmt"
	"strings"
)

// InsufficientDataError indicates that not enough pairwise samples exist to
// train the model. The evaluation engine recovers from this by falling back
// to the heuristic ranker; the dedicated training command treats it as fatal.
type InsufficientDataError struct {
	Pairs    int
	MinPairs int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient pairwise training data: %d pairs, need at least %d", e.Pairs, e.MinPairs)
}

// SingleClassError indicates that the pairwise target labels collapsed to one
// class, which a binary classifier cannot be fit on. Re-constructing the
// pairs with mirroring enabled is the documented recovery.
type SingleClassError struct {
	Class int
}

func (e *SingleClassError) Error() string {
	return fmt.Sprintf("pairwise targets contain only class %d; re-construct with mirroring enabled", e.Class)
}

// ModelMismatchError indicates that a persisted model's feature-name list
// disagrees with the current feature contract. Scores from a mismatched model
// are meaningless, so the mismatch must be surfaced before any scoring.
type ModelMismatchError struct {
	Expected []string
	Got      []string
}

func (e *ModelMismatchError) Error() string {
	return fmt.Sprintf("model feature names mismatch: expected [%s], got [%s]",
		strings.Join(e.Expected, ", "), strings.Join(e.Got, ", "))
}

// NotFittedError indicates use of a model operation that requires training first.
type NotFittedError struct {
	Op string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("model must be trained before %s", e.Op)
}
