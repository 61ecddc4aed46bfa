// Package ltr implements pairwise learning-to-rank with a linear model.
package ltr

import (
	"fmt"
	"math"
)

// StandardScaler standardizes features to zero mean and unit variance.
// Fit on the pairwise difference vectors; the same transform must be applied
// at scoring time. Fields are exported for model persistence.
type StandardScaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// Fit computes per-feature mean and standard deviation from the samples.
// Features with zero variance get a standard deviation of 1.0 so transforming
// them is a no-op shift rather than a division by zero.
func (s *StandardScaler) Fit(samples [][]float64) error {
	if len(samples) == 0 {
		return fmt.Errorf("cannot fit scaler on empty data")
	}

	dim := len(samples[0])
	s.Mean = make([]float64, dim)
	s.Std = make([]float64, dim)

	for _, sample := range samples {
		if len(sample) != dim {
			return fmt.Errorf("inconsistent feature dimension: expected %d, got %d", dim, len(sample))
		}
		for i, v := range sample {
			s.Mean[i] += v
		}
	}
	n := float64(len(samples))
	for i := range s.Mean {
		s.Mean[i] /= n
	}

	for _, sample := range samples {
		for i, v := range sample {
			d := v - s.Mean[i]
			s.Std[i] += d * d
		}
	}
	for i := range s.Std {
		s.Std[i] = math.Sqrt(s.Std[i] / n)
		if s.Std[i] == 0 {
			s.Std[i] = 1.0
		}
	}

	return nil
}

// Transform standardizes a single sample using the fitted mean and std.
func (s *StandardScaler) Transform(sample []float64) []float64 {
	scaled := make([]float64, len(sample))
	for i, v := range sample {
		scaled[i] = (v - s.Mean[i]) / s.Std[i]
	}
	return scaled
}

// TransformAll standardizes every sample.
func (s *StandardScaler) TransformAll(samples [][]float64) [][]float64 {
	scaled := make([][]float64, len(samples))
	for i, sample := range samples {
		scaled[i] = s.Transform(sample)
	}
	return scaled
}
