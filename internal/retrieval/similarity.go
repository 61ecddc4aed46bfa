// Package retrieval ranks jobs against a resume by semantic embedding similarity.
package retrieval

import "math"

// CosineSimilarity returns the cosine similarity of two vectors.
// The similarity of a zero vector (or of vectors with mismatched dimensions)
// is defined as 0.0; this function never divides by zero.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
