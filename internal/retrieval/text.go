// Package retrieval ranks jobs against a resume by semantic embedding similarity.
package retrieval

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// JobToText serializes a job posting into a single embedding input string.
// The field order is fixed so repeated calls on unchanged input produce
// identical text, which keeps embeddings reproducible.
func JobToText(job *types.JobPosting) string {
	parts := []string{
		fmt.Sprintf("Title: %s", job.Title),
		fmt.Sprintf("Responsibilities: %s", job.Responsibilities),
		fmt.Sprintf("Requirements: %s", job.RequirementsText),
		fmt.Sprintf("Skills: %s", strings.Join(job.Skills, ", ")),
	}
	return strings.Join(parts, " ")
}

// ResumeToText serializes a resume into a single embedding input string with
// a fixed field order.
func ResumeToText(resume *types.Resume) string {
	parts := []string{
		fmt.Sprintf("Education: %s", resume.Education),
		fmt.Sprintf("Projects: %s", resume.Projects),
		fmt.Sprintf("Experience: %s", resume.Experience),
		fmt.Sprintf("Skills: %s", strings.Join(resume.Skills, ", ")),
	}
	return strings.Join(parts, " ")
}
