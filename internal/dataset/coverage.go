// Package dataset loads and validates the resume, job, and label corpora.
package dataset

import (
	"github.com/jonathan/job-matcher/internal/types"
)

// ValidateCoverage checks that every (resume, job) pair has a label record.
// Incomplete coverage silently biases LOOCV (unlabeled pairs look identical
// to irrelevant ones), so a gap is a hard error: the returned CoverageError
// enumerates the first few missing pairs and the total count.
func ValidateCoverage(labels []types.LabelRecord, resumes []types.Resume, jobs []types.JobPosting) error {
	labeled := make(map[types.PairKey]bool, len(labels))
	for _, record := range labels {
		labeled[types.PairKey{ResumeID: record.ResumeID, JobID: record.JobID}] = true
	}

	var missing []types.PairKey
	totalMissing := 0
	for i := range resumes {
		for j := range jobs {
			key := types.PairKey{ResumeID: resumes[i].ResumeID, JobID: jobs[j].JobID}
			if !labeled[key] {
				totalMissing++
				if len(missing) < maxReportedMissing {
					missing = append(missing, key)
				}
			}
		}
	}

	if totalMissing > 0 {
		return &CoverageError{Missing: missing, TotalMissing: totalMissing}
	}
	return nil
}
