// Package retrieval ranks jobs against a resume by semantic embedding similarity.
package retrieval

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/types"
)

// Match is a single job with its embedding similarity to a resume.
type Match struct {
	Job   types.JobPosting `json:"job"`
	Score float64          `json:"score"`
	Rank  int              `json:"rank"`
}

// RankJobs ranks jobs by cosine similarity between the resume's text embedding
// and each job's text embedding. The provider is invoked once for the resume
// and once for the whole job batch, not once per pair.
//
// Results are sorted by descending similarity with ties keeping input order,
// and ranks are assigned 1-based after sorting. topK <= 0 returns all jobs.
// An empty job list returns an empty result.
func RankJobs(ctx context.Context, provider embedding.Provider, resume *types.Resume, jobs []types.JobPosting, topK int) ([]Match, error) {
	if len(jobs) == 0 {
		return []Match{}, nil
	}

	resumeVecs, err := provider.Embed(ctx, []string{ResumeToText(resume)})
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume: %w", err)
	}
	if len(resumeVecs) != 1 {
		return nil, fmt.Errorf("expected 1 resume embedding, got %d", len(resumeVecs))
	}

	jobTexts := make([]string, len(jobs))
	for i := range jobs {
		jobTexts[i] = JobToText(&jobs[i])
	}
	jobVecs, err := provider.Embed(ctx, jobTexts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed jobs: %w", err)
	}
	if len(jobVecs) != len(jobs) {
		return nil, fmt.Errorf("expected %d job embeddings, got %d", len(jobs), len(jobVecs))
	}

	matches := make([]Match, len(jobs))
	for i := range jobs {
		matches[i] = Match{
			Job:   jobs[i],
			Score: CosineSimilarity(resumeVecs[0], jobVecs[i]),
		}
	}

	// Stable sort so equal scores retain input order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK > 0 && topK < len(matches) {
		matches = matches[:topK]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}

	return matches, nil
}
