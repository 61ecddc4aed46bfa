// Package ltr implements pairwise learning-to-rank with a linear model.
package ltr

import (
	"github.com/jonathan/job-matcher/internal/types"
)

// DefaultMinRelDiff is the minimum relevance gap between two labels for the
// pair to produce a training sample.
const DefaultMinRelDiff = 2

// DefaultMinPairs is the minimum number of pairwise samples required before
// attempting to train.
const DefaultMinPairs = 10

// ConstructPairwiseData turns per-resume relevance labels into signed
// feature-difference training samples.
//
// For each resume independently, every ordered pair of distinct label records
// (i, j) with label_i >= label_j + minRelDiff emits the difference
// features_i - features_j with target 1 ("i preferred over j"). With mirror
// enabled, the negated difference is also emitted with target 0, which
// guarantees both classes are present whenever at least one qualifying pair
// exists (a classifier that only ever sees one class cannot be fit).
//
// Pairs whose feature vectors are missing from the lookup are skipped
// silently. If no qualifying pairs exist at all, both returned slices are
// empty; callers must check for this explicitly.
func ConstructPairwiseData(labels []types.LabelRecord, features map[types.PairKey][]float64, minRelDiff int, mirror bool) ([][]float64, []int) {
	// Group labels per resume, preserving first-appearance order
	var resumeOrder []string
	byResume := make(map[string][]types.LabelRecord)
	for _, record := range labels {
		if _, seen := byResume[record.ResumeID]; !seen {
			resumeOrder = append(resumeOrder, record.ResumeID)
		}
		byResume[record.ResumeID] = append(byResume[record.ResumeID], record)
	}

	var pairsX [][]float64
	var pairsY []int

	for _, resumeID := range resumeOrder {
		records := byResume[resumeID]
		for i, winner := range records {
			for j, loser := range records {
				if i == j {
					continue
				}
				if winner.Label < loser.Label+minRelDiff {
					continue
				}

				winnerFeatures, ok := features[types.PairKey{ResumeID: winner.ResumeID, JobID: winner.JobID}]
				if !ok {
					continue
				}
				loserFeatures, ok := features[types.PairKey{ResumeID: loser.ResumeID, JobID: loser.JobID}]
				if !ok {
					continue
				}

				diff := make([]float64, len(winnerFeatures))
				for k := range winnerFeatures {
					diff[k] = winnerFeatures[k] - loserFeatures[k]
				}
				pairsX = append(pairsX, diff)
				pairsY = append(pairsY, 1)

				if mirror {
					mirrored := make([]float64, len(diff))
					for k := range diff {
						mirrored[k] = -diff[k]
					}
					pairsX = append(pairsX, mirrored)
					pairsY = append(pairsY, 0)
				}
			}
		}
	}

	return pairsX, pairsY
}

// CheckSufficientPairs reports whether the pairwise sample count meets the
// minimum required for training.
func CheckSufficientPairs(pairsX [][]float64, minPairs int) bool {
	return len(pairsX) >= minPairs
}
