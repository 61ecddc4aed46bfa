// Package ltr implements pairwise learning-to-rank with a linear model.
package ltr

import (
	"fmt"
	"math"
)

// Optimizer settings for the logistic regression fit. The fit is a
// deterministic full-batch gradient descent: no random initialization, no
// sampling, so training the same data always yields the same weights.
const (
	defaultC       = 0.1 // inverse regularization strength; low = strong L2
	defaultMaxIter = 1000
	learningRate   = 0.5
	gradientTol    = 1e-8
	maxShrink      = 0.5 // cap on learningRate*lambda; at >= 1 the L2 step diverges
)

// LogisticRegression is an L2-regularized binary logistic regression.
// The regularization strength is controlled by C (inverse strength, as in the
// usual formulation); the default is deliberately strong to keep the weights
// stable under the correlated feature set used for pairwise ranking.
// Fields are exported for model persistence.
type LogisticRegression struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	C       float64   `json:"c"`
	MaxIter int       `json:"max_iter"`
}

// NewLogisticRegression returns a classifier with the given inverse
// regularization strength. c <= 0 selects the default.
func NewLogisticRegression(c float64) *LogisticRegression {
	if c <= 0 {
		c = defaultC
	}
	return &LogisticRegression{C: c, MaxIter: defaultMaxIter}
}

// Fit trains the classifier on samples with binary targets {0,1}.
// The objective is mean log-loss plus L2 penalty ||w||^2 / (2*C*n).
func (lr *LogisticRegression) Fit(samples [][]float64, targets []int) error {
	if len(samples) == 0 {
		return fmt.Errorf("cannot fit on empty data")
	}
	if len(samples) != len(targets) {
		return fmt.Errorf("sample/target length mismatch: %d vs %d", len(samples), len(targets))
	}

	dim := len(samples[0])
	lr.Weights = make([]float64, dim)
	lr.Bias = 0.0
	if lr.MaxIter <= 0 {
		lr.MaxIter = defaultMaxIter
	}

	n := float64(len(samples))
	lambda := 1.0 / (lr.C * n)
	// Small C on few samples makes learningRate*lambda exceed 1, where the
	// weight update stops being contractive and the fit blows up to NaN.
	if learningRate*lambda > maxShrink {
		lambda = maxShrink / learningRate
	}

	gradW := make([]float64, dim)
	for iter := 0; iter < lr.MaxIter; iter++ {
		for i := range gradW {
			gradW[i] = 0.0
		}
		gradB := 0.0

		for i, sample := range samples {
			pred := sigmoid(lr.DecisionFunction(sample))
			residual := pred - float64(targets[i])
			for j, v := range sample {
				gradW[j] += residual * v
			}
			gradB += residual
		}

		gradNorm := 0.0
		for j := range gradW {
			gradW[j] = gradW[j]/n + lambda*lr.Weights[j]
			gradNorm += gradW[j] * gradW[j]
		}
		gradB /= n
		gradNorm += gradB * gradB

		for j := range lr.Weights {
			lr.Weights[j] -= learningRate * gradW[j]
		}
		lr.Bias -= learningRate * gradB

		if gradNorm < gradientTol {
			break
		}
	}

	return nil
}

// DecisionFunction returns the signed linear score w.x + b.
// This raw margin, not a probability, is what ranking consumes.
func (lr *LogisticRegression) DecisionFunction(sample []float64) float64 {
	score := lr.Bias
	for i, w := range lr.Weights {
		if i < len(sample) {
			score += w * sample[i]
		}
	}
	return score
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
