// Package eval implements ranking metrics and the offline LOOCV evaluation engine.
package eval

import (
	"math"
	"sort"
)

// Gain selects the relevance-gain convention used by DCG. Both conventions
// are in active use: the weak-label ablation harness requires exponential
// gain, the basic evaluation harness uses linear gain. Callers always choose;
// the metric functions assume neither.
type Gain int

const (
	// GainLinear uses rel directly.
	GainLinear Gain = iota
	// GainExponential uses 2^rel - 1.
	GainExponential
)

// Apply maps a relevance score through the gain function.
func (g Gain) Apply(rel float64) float64 {
	if g == GainExponential {
		return math.Pow(2, rel) - 1
	}
	return rel
}

// PrecisionAtK returns the fraction of the first k ranked ids that are
// members of the relevant set. Membership, not score magnitude, drives this
// metric. Returns 0.0 if k <= 0 or the ranked list is empty.
func PrecisionAtK(rankedIDs []string, relevantIDs map[string]bool, k int) float64 {
	if k <= 0 || len(rankedIDs) == 0 {
		return 0.0
	}

	topK := rankedIDs
	if len(topK) > k {
		topK = topK[:k]
	}

	relevantCount := 0
	for _, id := range topK {
		if relevantIDs[id] {
			relevantCount++
		}
	}

	return float64(relevantCount) / float64(k)
}

// DCGAtK computes the discounted cumulative gain of the first k ranked ids:
// sum of gain(rel_i) / log2(i+1) over 1-based positions i. Ids without a
// relevance score default to 0.
func DCGAtK(rankedIDs []string, relevance map[string]float64, k int, gain Gain) float64 {
	if k <= 0 || len(rankedIDs) == 0 {
		return 0.0
	}

	dcg := 0.0
	for i, id := range rankedIDs {
		if i >= k {
			break
		}
		rel := relevance[id]
		dcg += gain.Apply(rel) / math.Log2(float64(i)+2)
	}
	return dcg
}

// IdealDCGAtK computes the best achievable DCG@k: all known relevance scores
// sorted descending with the same position discount.
func IdealDCGAtK(relevance map[string]float64, k int, gain Gain) float64 {
	if k <= 0 || len(relevance) == 0 {
		return 0.0
	}

	sorted := make([]float64, 0, len(relevance))
	for _, rel := range relevance {
		sorted = append(sorted, rel)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	idcg := 0.0
	for i, rel := range sorted {
		if i >= k {
			break
		}
		idcg += gain.Apply(rel) / math.Log2(float64(i)+2)
	}
	return idcg
}

// NDCGAtK computes DCG@k normalized by the ideal DCG@k, giving a score in
// [0,1]. Returns 0.0 when either input is empty or when no relevant items
// exist (ideal DCG of 0).
func NDCGAtK(rankedIDs []string, relevance map[string]float64, k int, gain Gain) float64 {
	if k <= 0 || len(rankedIDs) == 0 || len(relevance) == 0 {
		return 0.0
	}

	idcg := IdealDCGAtK(relevance, k, gain)
	if idcg == 0.0 {
		return 0.0
	}

	return DCGAtK(rankedIDs, relevance, k, gain) / idcg
}

// Mean returns the arithmetic mean of values, 0.0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Std returns the population standard deviation of values, 0.0 for an empty slice.
func Std(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
