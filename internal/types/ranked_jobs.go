// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RankedJob is the per-job outcome of a heuristic ranking pass, carrying the
// full explainable breakdown alongside the final score.
type RankedJob struct {
	Job            JobPosting `json:"job"`
	EmbeddingScore float64    `json:"embedding_score"`
	SkillOverlap   float64    `json:"skill_overlap"`
	KeywordBonus   float64    `json:"keyword_bonus"`
	GapPenalty     float64    `json:"gap_penalty"`
	FinalScore     float64    `json:"final_score"`
	Rank           int        `json:"rank"`
	MatchedSkills  []string   `json:"matched_skills"`
	GapSkills      []string   `json:"gap_skills"`
}

// RankedJobs is an ordered ranking result, best match first.
type RankedJobs struct {
	Ranked []RankedJob `json:"ranked"`
}
