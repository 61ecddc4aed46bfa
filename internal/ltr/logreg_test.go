package ltr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogisticRegression_LearnsSeparableData(t *testing.T) {
	lr := NewLogisticRegression(1.0)
	samples := [][]float64{
		{1.0}, {0.8}, {0.6},
		{-1.0}, {-0.8}, {-0.6},
	}
	targets := []int{1, 1, 1, 0, 0, 0}

	require.NoError(t, lr.Fit(samples, targets))

	assert.Positive(t, lr.Weights[0])
	assert.Greater(t, lr.DecisionFunction([]float64{0.9}), lr.DecisionFunction([]float64{-0.9}))
}

func TestLogisticRegression_Deterministic(t *testing.T) {
	samples := [][]float64{{1.0, 0.5}, {-1.0, -0.5}, {0.7, 0.2}, {-0.7, -0.2}}
	targets := []int{1, 0, 1, 0}

	a := NewLogisticRegression(0)
	b := NewLogisticRegression(0)
	require.NoError(t, a.Fit(samples, targets))
	require.NoError(t, b.Fit(samples, targets))

	assert.Equal(t, a.Weights, b.Weights)
	assert.Equal(t, a.Bias, b.Bias)
}

func TestLogisticRegression_StrongerRegularizationShrinksWeights(t *testing.T) {
	samples := [][]float64{{1.0}, {0.9}, {-1.0}, {-0.9}}
	targets := []int{1, 1, 0, 0}

	strong := NewLogisticRegression(0.01)
	weak := NewLogisticRegression(10.0)
	require.NoError(t, strong.Fit(samples, targets))
	require.NoError(t, weak.Fit(samples, targets))

	assert.Less(t, strong.Weights[0], weak.Weights[0])
}

func TestLogisticRegression_TinyCStaysFinite(t *testing.T) {
	lr := NewLogisticRegression(0.01)
	samples := [][]float64{{1.0}, {0.9}, {-1.0}, {-0.9}}
	targets := []int{1, 1, 0, 0}

	require.NoError(t, lr.Fit(samples, targets))

	assert.False(t, math.IsNaN(lr.Weights[0]))
	assert.False(t, math.IsInf(lr.Weights[0], 0))
	assert.False(t, math.IsNaN(lr.Bias))
	assert.Positive(t, lr.Weights[0])
}

func TestLogisticRegression_DefaultC(t *testing.T) {
	lr := NewLogisticRegression(0)

	assert.Equal(t, 0.1, lr.C)
}

func TestLogisticRegression_FitRejectsBadInput(t *testing.T) {
	lr := NewLogisticRegression(0)

	assert.Error(t, lr.Fit(nil, nil))
	assert.Error(t, lr.Fit([][]float64{{1}}, []int{1, 0}))
}

func TestSigmoid_Bounds(t *testing.T) {
	assert.InDelta(t, 0.5, sigmoid(0), 1e-9)
	assert.Greater(t, sigmoid(10.0), 0.99)
	assert.Less(t, sigmoid(-10.0), 0.01)
}
