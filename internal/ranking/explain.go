// Package ranking provides explainable feature scoring and heuristic ranking of jobs against a resume.
package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/types"
)

// maxSkillsToShow caps how many matched/missing skills appear in an explanation.
const maxSkillsToShow = 5

// Explain produces a human-readable breakdown of why a ranked job scored the
// way it did. It is a presentation helper only; it plays no part in ranking.
func Explain(result *types.RankedJob, cfg *config.Config) string {
	weights := cfg.Weights

	matched := truncateList(result.MatchedSkills, maxSkillsToShow)
	gaps := "None"
	if len(result.GapSkills) > 0 {
		gaps = truncateList(result.GapSkills, maxSkillsToShow)
	}

	lines := []string{
		fmt.Sprintf("[%s] Ranked #%d for the following reasons:", result.Job.Title, result.Rank),
		"",
		fmt.Sprintf("1. Semantic Similarity: %.3f (Weight: %g)", result.EmbeddingScore, weights.Embedding),
		"   - The job description is semantically aligned with the resume content",
		"",
		fmt.Sprintf("2. Skill Coverage: %.3f (Weight: %g)", result.SkillOverlap, weights.SkillOverlap),
		fmt.Sprintf("   - Matched skills (%d): %s", len(result.MatchedSkills), matched),
		fmt.Sprintf("   - Missing skills (%d): %s", len(result.GapSkills), gaps),
		"",
		fmt.Sprintf("3. Keyword Bonus: %.3f (Weight: %g)", result.KeywordBonus, weights.KeywordBonus),
		"   - Matches high-priority skills",
		"",
		fmt.Sprintf("4. Gap Penalty: %.3f (Weight: %g)", result.GapPenalty, weights.GapPenalty),
		"   - Penalty applied for missing critical skills",
		"",
		fmt.Sprintf("Overall Score: %.3f", result.FinalScore),
	}

	return strings.Join(lines, "\n")
}

func truncateList(items []string, max int) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) > max {
		items = items[:max]
	}
	return strings.Join(items, ", ")
}
