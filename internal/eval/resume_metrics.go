// Package eval implements ranking metrics and the offline LOOCV evaluation engine.
package eval

import (
	"sort"

	"github.com/jonathan/job-matcher/internal/types"
)

// ResumeMetrics holds Precision@K and NDCG@K for one resume, keyed by K.
type ResumeMetrics struct {
	Precision map[int]float64 `json:"precision"`
	NDCG      map[int]float64 `json:"ndcg"`
}

// MetricsForResume computes Precision@K and NDCG@K for a single resume's
// recommendations at every requested K. The label scale supplies both the
// relevance threshold for precision and the NDCG gain convention, so the 0-3
// and 1-5 harnesses cannot accidentally share thresholds.
func MetricsForResume(recommendedIDs []string, labels map[string]int, kValues []int, scale types.LabelScale) ResumeMetrics {
	relevantIDs := make(map[string]bool)
	relevance := make(map[string]float64, len(labels))
	for jobID, label := range labels {
		relevance[jobID] = float64(label)
		if label >= scale.RelevantThreshold() {
			relevantIDs[jobID] = true
		}
	}

	gain := GainLinear
	if scale.ExponentialGain() {
		gain = GainExponential
	}

	metrics := ResumeMetrics{
		Precision: make(map[int]float64, len(kValues)),
		NDCG:      make(map[int]float64, len(kValues)),
	}
	for _, k := range kValues {
		metrics.Precision[k] = PrecisionAtK(recommendedIDs, relevantIDs, k)
		metrics.NDCG[k] = NDCGAtK(recommendedIDs, relevance, k, gain)
	}

	return metrics
}

// AggregateResumeMetrics averages per-resume metrics across resumes.
// K values present in any input appear in the output.
func AggregateResumeMetrics(all []ResumeMetrics) ResumeMetrics {
	aggregated := ResumeMetrics{
		Precision: make(map[int]float64),
		NDCG:      make(map[int]float64),
	}
	if len(all) == 0 {
		return aggregated
	}

	kSet := make(map[int]bool)
	for _, m := range all {
		for k := range m.Precision {
			kSet[k] = true
		}
	}
	kValues := make([]int, 0, len(kSet))
	for k := range kSet {
		kValues = append(kValues, k)
	}
	sort.Ints(kValues)

	for _, k := range kValues {
		var precisionValues, ndcgValues []float64
		for _, m := range all {
			if v, ok := m.Precision[k]; ok {
				precisionValues = append(precisionValues, v)
			}
			if v, ok := m.NDCG[k]; ok {
				ndcgValues = append(ndcgValues, v)
			}
		}
		aggregated.Precision[k] = Mean(precisionValues)
		aggregated.NDCG[k] = Mean(ndcgValues)
	}

	return aggregated
}
