package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

// stubProvider returns canned vectors keyed by input text and counts batch calls.
type stubProvider struct {
	vectors map[string][]float64
	calls   int
	err     error
}

func (s *stubProvider) Embed(_ context.Context, texts []string) ([][]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = s.vectors[text]
	}
	return out, nil
}

func TestRankJobs_SortsBySimilarityDescending(t *testing.T) {
	resume := &types.Resume{Education: "CS", Skills: []string{"Python"}}
	jobs := []types.JobPosting{
		{JobID: "far", Title: "A", Responsibilities: "r", RequirementsText: "q", Skills: []string{"x"}},
		{JobID: "near", Title: "B", Responsibilities: "r", RequirementsText: "q", Skills: []string{"y"}},
	}

	provider := &stubProvider{vectors: map[string][]float64{
		ResumeToText(resume):  {1, 0},
		JobToText(&jobs[0]):   {0, 1},
		JobToText(&jobs[1]):   {1, 0.1},
	}}

	matches, err := RankJobs(context.Background(), provider, resume, jobs, 0)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "near", matches[0].Job.JobID)
	assert.Equal(t, 1, matches[0].Rank)
	assert.Equal(t, "far", matches[1].Job.JobID)
	assert.Equal(t, 2, matches[1].Rank)
}

func TestRankJobs_TiesKeepInputOrder(t *testing.T) {
	resume := &types.Resume{Education: "CS"}
	jobs := []types.JobPosting{
		{JobID: "first", Title: "A", Responsibilities: "r", RequirementsText: "q"},
		{JobID: "second", Title: "B", Responsibilities: "r", RequirementsText: "q"},
	}
	same := []float64{1, 0}
	provider := &stubProvider{vectors: map[string][]float64{
		ResumeToText(resume): same,
		JobToText(&jobs[0]):  same,
		JobToText(&jobs[1]):  same,
	}}

	matches, err := RankJobs(context.Background(), provider, resume, jobs, 0)
	require.NoError(t, err)

	assert.Equal(t, "first", matches[0].Job.JobID)
	assert.Equal(t, "second", matches[1].Job.JobID)
}

func TestRankJobs_TopKTruncates(t *testing.T) {
	resume := &types.Resume{Education: "CS"}
	jobs := []types.JobPosting{
		{JobID: "j1", Title: "A", Responsibilities: "r", RequirementsText: "q"},
		{JobID: "j2", Title: "B", Responsibilities: "r", RequirementsText: "q"},
		{JobID: "j3", Title: "C", Responsibilities: "r", RequirementsText: "q"},
	}
	provider := &stubProvider{vectors: map[string][]float64{
		ResumeToText(resume): {1, 0},
		JobToText(&jobs[0]):  {1, 0},
		JobToText(&jobs[1]):  {0.5, 0.5},
		JobToText(&jobs[2]):  {0, 1},
	}}

	matches, err := RankJobs(context.Background(), provider, resume, jobs, 2)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "j1", matches[0].Job.JobID)
	assert.Equal(t, 2, provider.calls)
}

func TestRankJobs_EmptyJobsReturnsEmpty(t *testing.T) {
	provider := &stubProvider{}

	matches, err := RankJobs(context.Background(), provider, &types.Resume{}, nil, 5)
	require.NoError(t, err)

	assert.Empty(t, matches)
	assert.Equal(t, 0, provider.calls)
}

func TestRankJobs_ProviderErrorIsWrapped(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}

	_, err := RankJobs(context.Background(), provider, &types.Resume{}, []types.JobPosting{{JobID: "j1"}}, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to embed resume")
}
