package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestValidateCoverage_CompleteCoveragePasses(t *testing.T) {
	resumes := []types.Resume{{ResumeID: "r1"}, {ResumeID: "r2"}}
	jobs := []types.JobPosting{{JobID: "j1"}}
	labels := []types.LabelRecord{
		{ResumeID: "r1", JobID: "j1", Label: 3},
		{ResumeID: "r2", JobID: "j1", Label: 2},
	}

	assert.NoError(t, ValidateCoverage(labels, resumes, jobs))
}

func TestValidateCoverage_MissingPairIsReported(t *testing.T) {
	resumes := []types.Resume{{ResumeID: "r1"}}
	jobs := []types.JobPosting{{JobID: "j1"}, {JobID: "j2"}}
	labels := []types.LabelRecord{{ResumeID: "r1", JobID: "j1", Label: 3}}

	err := ValidateCoverage(labels, resumes, jobs)

	var coverageErr *CoverageError
	require.ErrorAs(t, err, &coverageErr)
	assert.Equal(t, 1, coverageErr.TotalMissing)
	assert.Equal(t, types.PairKey{ResumeID: "r1", JobID: "j2"}, coverageErr.Missing[0])
}

func TestValidateCoverage_EnumerationIsCapped(t *testing.T) {
	resumes := []types.Resume{{ResumeID: "r1"}}
	var jobs []types.JobPosting
	for i := 0; i < 25; i++ {
		jobs = append(jobs, types.JobPosting{JobID: fmt.Sprintf("j%d", i)})
	}

	err := ValidateCoverage(nil, resumes, jobs)

	var coverageErr *CoverageError
	require.ErrorAs(t, err, &coverageErr)
	assert.Equal(t, 25, coverageErr.TotalMissing)
	assert.Len(t, coverageErr.Missing, 10)
	assert.Contains(t, coverageErr.Error(), "and 15 more")
}
