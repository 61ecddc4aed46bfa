// Package ranking provides explainable feature scoring and heuristic ranking of jobs against a resume.
package ranking

import (
	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Feature names shared between the feature builder, the vectorizer, and any
// persisted model.
const (
	FeatureEmbedding    = "embedding"
	FeatureSkillOverlap = "skill_overlap"
	FeatureKeywordBonus = "keyword_bonus"
	FeatureGapPenalty   = "gap_penalty"
)

// FeatureNames is the fixed, ordered feature list used by the learned model.
// DO NOT reorder: a serialized model is tied one-to-one to this exact list,
// and reordering silently corrupts its scores.
//
// The learned model uses 2 of the 4 features to balance richness against
// multicollinearity, established empirically on the label corpus:
//   - embedding: semantic similarity (r=0.89 with keyword_bonus, acceptable)
//   - keyword_bonus: priority keyword matching (r=0.68 with labels)
//   - skill_overlap removed: r=0.93 with keyword_bonus (redundant)
//   - gap_penalty removed: r=0.95 with skill_overlap (nearly identical)
//
// L2 regularization on the classifier absorbs the remaining correlation.
var FeatureNames = []string{
	FeatureEmbedding,
	FeatureKeywordBonus,
}

// Features is the fixed per-pair feature schema. All values are in [0,1]
// except Embedding, which is a cosine similarity.
type Features struct {
	Embedding    float64 `json:"embedding"`
	SkillOverlap float64 `json:"skill_overlap"`
	KeywordBonus float64 `json:"keyword_bonus"`
	GapPenalty   float64 `json:"gap_penalty"`
}

// Value returns the named feature value. Unknown names return 0.0.
func (f Features) Value(name string) float64 {
	switch name {
	case FeatureEmbedding:
		return f.Embedding
	case FeatureSkillOverlap:
		return f.SkillOverlap
	case FeatureKeywordBonus:
		return f.KeywordBonus
	case FeatureGapPenalty:
		return f.GapPenalty
	default:
		return 0.0
	}
}

// Vectorize emits the feature values in FeatureNames order.
func Vectorize(f Features) []float64 {
	vector := make([]float64, len(FeatureNames))
	for i, name := range FeatureNames {
		vector[i] = f.Value(name)
	}
	return vector
}

// PairFeatures bundles the feature values for one resume-job pair with the
// matched and gap skill lists that produced them.
type PairFeatures struct {
	Features      Features
	MatchedSkills []string
	GapSkills     []string
}

// BuildPairFeatures computes the full feature breakdown for a resume-job pair.
// Resume skills are merged with skills extracted from the resume's narrative
// text before normalization; both skill lists are normalized against the
// given vocabulary. The embedding score must be pre-computed by the caller.
func BuildPairFeatures(resume *types.Resume, job *types.JobPosting, embeddingScore float64, cfg *config.Config, vocab *skills.Vocabulary) PairFeatures {
	merged := skills.MergeResumeSkills(resume, vocab)
	resumeSkills := vocab.Normalize(merged)
	jobSkills := vocab.Normalize(job.Skills)

	features := Features{
		Embedding:    embeddingScore,
		SkillOverlap: SkillOverlap(resumeSkills, jobSkills),
		KeywordBonus: KeywordBonus(resumeSkills, jobSkills,
			cfg.Keywords.HighPriority,
			cfg.Keywords.HighPriorityMultiplier,
			cfg.Normalization.MaxKeywords),
		GapPenalty: GapPenalty(resumeSkills, jobSkills,
			cfg.GapPenalty.CriticalSkills,
			cfg.GapPenalty.CriticalPenaltyMultiplier,
			cfg.Normalization.MaxGaps),
	}

	return PairFeatures{
		Features:      features,
		MatchedSkills: MatchedSkills(resumeSkills, jobSkills),
		GapSkills:     GapSkills(resumeSkills, jobSkills),
	}
}

// BuildFeatures computes the feature values for a resume-job pair.
func BuildFeatures(resume *types.Resume, job *types.JobPosting, embeddingScore float64, cfg *config.Config, vocab *skills.Vocabulary) Features {
	return BuildPairFeatures(resume, job, embeddingScore, cfg, vocab).Features
}

// BuildFeatureLookup builds a vectorized feature lookup for every
// (resume, job) pair, reading embedding scores from the shared cache.
// Pairs missing from the cache use an embedding score of 0.0.
func BuildFeatureLookup(resumes []types.Resume, jobs []types.JobPosting, cache map[types.PairKey]float64, cfg *config.Config, vocab *skills.Vocabulary) map[types.PairKey][]float64 {
	lookup := make(map[types.PairKey][]float64, len(resumes)*len(jobs))
	for i := range resumes {
		for j := range jobs {
			key := types.PairKey{ResumeID: resumes[i].ResumeID, JobID: jobs[j].JobID}
			features := BuildFeatures(&resumes[i], &jobs[j], cache[key], cfg, vocab)
			lookup[key] = Vectorize(features)
		}
	}
	return lookup
}
