package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestMetricsForResume_GradedScaleThreshold(t *testing.T) {
	recommended := []string{"j1", "j2", "j3", "j4", "j5"}
	labels := map[string]int{"j1": 3, "j2": 2, "j3": 1, "j4": 0, "j5": 2}

	metrics := MetricsForResume(recommended, labels, []int{5}, types.ScaleGraded)

	// Labels >= 2 are relevant on the 0-3 scale: j1, j2, j5
	assert.InDelta(t, 0.6, metrics.Precision[5], 1e-9)
	assert.InDelta(t, 1.0, metrics.NDCG[5], 0.2)
}

func TestMetricsForResume_WeakScaleThreshold(t *testing.T) {
	recommended := []string{"j1", "j2"}
	labels := map[string]int{"j1": 4, "j2": 3}

	metrics := MetricsForResume(recommended, labels, []int{2}, types.ScaleWeak)

	// Only label >= 4 counts as relevant on the 1-5 scale
	assert.InDelta(t, 0.5, metrics.Precision[2], 1e-9)
}

func TestMetricsForResume_ScalesUseDifferentGains(t *testing.T) {
	recommended := []string{"low", "high"}
	labels := map[string]int{"high": 3, "low": 1}

	linear := MetricsForResume(recommended, labels, []int{2}, types.ScaleGraded)
	exponential := MetricsForResume(recommended, labels, []int{2}, types.ScaleWeak)

	// Exponential gain punishes misordering high-relevance items harder
	assert.Less(t, exponential.NDCG[2], linear.NDCG[2])
}

func TestAggregateResumeMetrics_MeansAcrossResumes(t *testing.T) {
	all := []ResumeMetrics{
		{Precision: map[int]float64{5: 0.4}, NDCG: map[int]float64{5: 0.8}},
		{Precision: map[int]float64{5: 0.6}, NDCG: map[int]float64{5: 0.6}},
	}

	aggregated := AggregateResumeMetrics(all)

	require.Contains(t, aggregated.Precision, 5)
	assert.InDelta(t, 0.5, aggregated.Precision[5], 1e-9)
	assert.InDelta(t, 0.7, aggregated.NDCG[5], 1e-9)
}

func TestAggregateResumeMetrics_EmptyInput(t *testing.T) {
	aggregated := AggregateResumeMetrics(nil)

	assert.Empty(t, aggregated.Precision)
	assert.Empty(t, aggregated.NDCG)
}
