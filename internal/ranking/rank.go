// Package ranking provides explainable feature scoring and heuristic ranking of jobs against a resume.
package ranking

import (
	"sort"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/retrieval"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// RankWithFeatures re-ranks jobs using explainable features on top of
// embedding scores.
//
// The vocabulary is expanded with every skill literally present in the job
// batch exactly once, before any job is scored, so that ranking and any later
// re-derivation of features for the same batch see an identical vocabulary.
// The expansion is scoped to this call; the caller's vocabulary is untouched.
//
// Results are sorted by descending final score with ties keeping input order,
// and ranks are assigned 1-based after sorting.
func RankWithFeatures(resume *types.Resume, matches []retrieval.Match, cfg *config.Config, vocab *skills.Vocabulary) *types.RankedJobs {
	jobs := make([]types.JobPosting, len(matches))
	for i := range matches {
		jobs[i] = matches[i].Job
	}
	expanded := vocab.ExpandWithJobSkills(jobs)

	ranked := make([]types.RankedJob, 0, len(matches))
	for i := range matches {
		pair := BuildPairFeatures(resume, &matches[i].Job, matches[i].Score, cfg, expanded)
		finalScore := FinalScore(pair.Features, &cfg.Weights)

		ranked = append(ranked, types.RankedJob{
			Job:            matches[i].Job,
			EmbeddingScore: pair.Features.Embedding,
			SkillOverlap:   pair.Features.SkillOverlap,
			KeywordBonus:   pair.Features.KeywordBonus,
			GapPenalty:     pair.Features.GapPenalty,
			FinalScore:     finalScore,
			MatchedSkills:  pair.MatchedSkills,
			GapSkills:      pair.GapSkills,
		})
	}

	// Stable sort so equal scores retain input order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return &types.RankedJobs{Ranked: ranked}
}

// FinalScore combines the four features with the configured weights.
// The gap penalty is always subtracted; the other three contributions are added.
func FinalScore(f Features, w *config.Weights) float64 {
	return w.Embedding*f.Embedding +
		w.SkillOverlap*f.SkillOverlap +
		w.KeywordBonus*f.KeywordBonus -
		w.GapPenalty*f.GapPenalty
}
