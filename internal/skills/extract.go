// Package skills provides the canonical skill vocabulary and skill normalization utilities.
package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// nonWordPattern detects terms containing characters outside [A-Za-z0-9_],
// such as "C++", "C#", or ".NET", for which \b word boundaries misbehave.
var nonWordPattern = regexp.MustCompile(`\W`)

// ExtractSkillsFromText scans free text for vocabulary terms.
//
// Alphanumeric terms are matched on whole-word boundaries so "C" does not
// match inside "Cloud", and a match immediately followed by '+' or '#' is
// rejected so "C" does not match at the head of "C++" or "C#". Terms
// containing special characters are matched when delimited by whitespace,
// string boundaries, or trailing punctuation, which lets "C++" and "C#" match
// correctly. Matching is case-insensitive; results use the vocabulary casing
// and each term appears at most once, in vocabulary order.
func ExtractSkillsFromText(text string, vocab *Vocabulary) []string {
	if text == "" || vocab == nil || vocab.Len() == 0 {
		return nil
	}

	textLower := strings.ToLower(text)

	var matched []string
	for _, term := range vocab.Terms() {
		escaped := regexp.QuoteMeta(strings.ToLower(term))

		if nonWordPattern.MatchString(term) {
			re, err := regexp.Compile(`(?:^|\s)` + escaped + `(?:\s|$|[,;.])`)
			if err != nil {
				continue
			}
			if re.MatchString(textLower) {
				matched = append(matched, term)
			}
			continue
		}

		re, err := regexp.Compile(`\b` + escaped + `\b`)
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(textLower, -1) {
			// \b treats '+' and '#' as word boundaries, so without this
			// check a bare "C" matches at the 'C' of "C++" and "C#".
			if loc[1] < len(textLower) && (textLower[loc[1]] == '+' || textLower[loc[1]] == '#') {
				continue
			}
			matched = append(matched, term)
			break
		}
	}

	return matched
}

// MergeResumeSkills returns the resume's declared skills followed by any
// additional skills extracted from its narrative sections (education,
// projects, experience), deduplicated case-insensitively and preserving order
// of first appearance. This avoids penalizing a resume for skills mentioned
// in prose but omitted from the declared skill list.
func MergeResumeSkills(resume *types.Resume, vocab *Vocabulary) []string {
	var textParts []string
	if resume.Education != "" {
		textParts = append(textParts, resume.Education)
	}
	if resume.Projects != "" {
		textParts = append(textParts, resume.Projects)
	}
	if resume.Experience != "" {
		textParts = append(textParts, resume.Experience)
	}
	extracted := ExtractSkillsFromText(strings.Join(textParts, " "), vocab)

	seen := make(map[string]bool, len(resume.Skills))
	merged := make([]string, 0, len(resume.Skills)+len(extracted))
	for _, skill := range resume.Skills {
		merged = append(merged, skill)
		seen[strings.ToLower(skill)] = true
	}
	for _, skill := range extracted {
		lower := strings.ToLower(skill)
		if !seen[lower] {
			merged = append(merged, skill)
			seen[lower] = true
		}
	}

	return merged
}
