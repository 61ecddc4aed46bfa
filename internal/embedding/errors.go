// Package embedding provides text embedding providers for semantic similarity scoring.
package embedding

import "fmt"

// ProviderError represents a failure of the external embedding provider.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
