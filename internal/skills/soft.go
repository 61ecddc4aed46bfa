// Package skills provides the canonical skill vocabulary and skill normalization utilities.
package skills

import "strings"

// softSkills is the fixed set of non-technical competencies excluded from
// gap-penalty accounting. Their absence should not penalize a candidate the
// way a missing technical skill does.
var softSkills = map[string]bool{
	"communication":          true,
	"leadership":             true,
	"collaboration":          true,
	"teamwork":               true,
	"problem solving":        true,
	"critical thinking":      true,
	"time management":        true,
	"adaptability":           true,
	"creativity":             true,
	"work ethic":             true,
	"interpersonal skills":   true,
	"presentation skills":    true,
	"negotiation":            true,
	"conflict resolution":    true,
	"decision making":        true,
	"emotional intelligence": true,
	"mentoring":              true,
	"coaching":               true,
	"stakeholder management": true,
	"project management":     true,
	"agile methodologies":    true,
}

// IsSoftSkill reports whether the skill is on the soft-skill list (case-insensitive).
func IsSoftSkill(skill string) bool {
	return softSkills[strings.ToLower(strings.TrimSpace(skill))]
}

// FilterSoftSkills returns the skills with soft skills removed, preserving order.
func FilterSoftSkills(skillList []string) []string {
	filtered := make([]string, 0, len(skillList))
	for _, skill := range skillList {
		if !IsSoftSkill(skill) {
			filtered = append(filtered, skill)
		}
	}
	return filtered
}
