// Package ranking provides explainable feature scoring and heuristic ranking of jobs against a resume.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/skills"
)

// SkillOverlap returns the fraction of the job's normalized skills also
// present in the resume skill set. A job with no normalized skills scores 0.0.
func SkillOverlap(resumeSkills, jobSkills map[string]bool) float64 {
	if len(jobSkills) == 0 {
		return 0.0
	}

	matched := 0
	for skill := range jobSkills {
		if resumeSkills[skill] {
			matched++
		}
	}

	return float64(matched) / float64(len(jobSkills))
}

// KeywordBonus returns the normalized, weighted count of matched skills.
// Matched skills on the high-priority list count multiplier times; everything
// else counts once. The sum is divided by maxKeywords and clamped to [0,1].
func KeywordBonus(resumeSkills, jobSkills map[string]bool, highPriority []string, multiplier float64, maxKeywords int) float64 {
	if maxKeywords <= 0 {
		return 0.0
	}

	highPrioritySet := lowerSet(highPriority)

	bonus := 0.0
	for skill := range jobSkills {
		if !resumeSkills[skill] {
			continue
		}
		if highPrioritySet[strings.ToLower(skill)] {
			bonus += multiplier
		} else {
			bonus += 1.0
		}
	}

	return clamp01(bonus / float64(maxKeywords))
}

// GapPenalty returns the normalized, weighted count of job skills absent from
// the resume. Soft skills are excluded before accumulation; missing critical
// skills count criticalMultiplier times. The sum is divided by maxGaps and
// clamped to [0,1].
func GapPenalty(resumeSkills, jobSkills map[string]bool, criticalSkills []string, criticalMultiplier float64, maxGaps int) float64 {
	if maxGaps <= 0 {
		return 0.0
	}

	criticalSet := lowerSet(criticalSkills)

	penalty := 0.0
	for skill := range jobSkills {
		if resumeSkills[skill] || skills.IsSoftSkill(skill) {
			continue
		}
		if criticalSet[strings.ToLower(skill)] {
			penalty += criticalMultiplier
		} else {
			penalty += 1.0
		}
	}

	if penalty == 0 {
		return 0.0
	}

	return clamp01(penalty / float64(maxGaps))
}

// MatchedSkills returns the sorted intersection of the two normalized skill sets.
func MatchedSkills(resumeSkills, jobSkills map[string]bool) []string {
	matched := make([]string, 0)
	for skill := range jobSkills {
		if resumeSkills[skill] {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)
	return matched
}

// GapSkills returns the sorted job skills missing from the resume skill set.
func GapSkills(resumeSkills, jobSkills map[string]bool) []string {
	gaps := make([]string, 0)
	for skill := range jobSkills {
		if !resumeSkills[skill] {
			gaps = append(gaps, skill)
		}
	}
	sort.Strings(gaps)
	return gaps
}

func lowerSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[strings.ToLower(term)] = true
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
