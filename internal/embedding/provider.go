// Package embedding provides text embedding providers for semantic similarity scoring.
package embedding

import "context"

// Provider converts texts into fixed-dimension embedding vectors.
// Implementations must be deterministic for identical input, and the vector
// dimensionality is fixed per provider instance.
type Provider interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
