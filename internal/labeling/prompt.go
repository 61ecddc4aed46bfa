// Package labeling generates LLM-assisted weak relevance labels for
// (resume, job) pairs.
package labeling

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// buildPrompt renders the labeling prompt for one pair. Only raw resume and
// job content goes in: no ranking output, scores, or matched-skill lists, so
// the judge cannot echo the system it is meant to evaluate.
func buildPrompt(resume *types.Resume, job *types.JobPosting) string {
	company := job.Company
	if company == "" {
		company = "N/A"
	}

	var b strings.Builder
	b.WriteString("You are an independent expert evaluator assessing job-resume match quality.\n\n")
	b.WriteString("CRITICAL CONTEXT:\n")
	b.WriteString("- You do NOT know how any system ranked this job\n")
	b.WriteString("- You do NOT have access to any automated matching scores or rankings\n")
	b.WriteString("- Judge match quality solely based on the resume and job description below\n\n")

	b.WriteString("RESUME:\n")
	fmt.Fprintf(&b, "Education: %s\n", resume.Education)
	fmt.Fprintf(&b, "Experience: %s\n", resume.Experience)
	fmt.Fprintf(&b, "Projects: %s\n", resume.Projects)
	fmt.Fprintf(&b, "Skills: %s\n\n", strings.Join(resume.Skills, ", "))

	b.WriteString("JOB POSTING:\n")
	fmt.Fprintf(&b, "Title: %s\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n", company)
	fmt.Fprintf(&b, "Responsibilities: %s\n", job.Responsibilities)
	fmt.Fprintf(&b, "Requirements: %s\n", job.RequirementsText)
	fmt.Fprintf(&b, "Required Skills: %s\n\n", strings.Join(job.Skills, ", "))

	b.WriteString("TASK: Rate the match quality on a 1-5 scale based ONLY on the information above:\n\n")
	b.WriteString("Label Definitions:\n")
	b.WriteString("- 1 = Not a match (Direction clearly irrelevant; little to no overlap)\n")
	b.WriteString("- 2 = Weak match (Some overlap, but major gaps in core skills or experience)\n")
	b.WriteString("- 3 = Partial match (Relevant direction and some key skills, but multiple noticeable gaps)\n")
	b.WriteString("- 4 = Good match (Direction aligned and most important core skills present; gaps exist but are reasonable and commonly acceptable in real hiring)\n")
	b.WriteString("- 5 = Strong match (Highly aligned direction with strong coverage of core skills; only minor or optional requirements missing)\n\n")

	b.WriteString("IMPORTANT CALIBRATION RULE:\n")
	b.WriteString("- A rating of 4 does NOT require the resume to meet every listed job requirement.\n")
	b.WriteString("- Missing optional or commonly flexible requirements (e.g., degree level, years of experience, specific tools)\n")
	b.WriteString("  should NOT automatically prevent a rating of 4 if core skills and direction align.\n\n")

	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("- Base your rating ONLY on the resume and job description provided above\n")
	b.WriteString("- Do NOT fabricate experience or skills not mentioned in the resume\n")
	b.WriteString("- Evidence must be direct quotes or paraphrases from the resume/job description (max 200 chars each)\n")
	b.WriteString("- Provide 2-4 evidence items to support your rating\n")
	b.WriteString("- Keep notes concise (1-2 sentences)\n")
	b.WriteString("- If something is not mentioned, you can note \"Not evidenced\" or \"Not mentioned\"\n")
	b.WriteString("- Do NOT make claims without evidence from the text\n\n")

	b.WriteString("Respond in this EXACT JSON format:\n")
	b.WriteString("{\n")
	b.WriteString("  \"label\": <1-5>,\n")
	b.WriteString("  \"confidence\": <0.0-1.0>,\n")
	b.WriteString("  \"evidence\": [\n")
	b.WriteString("    \"<quote or paraphrase from resume/JD, max 200 chars>\",\n")
	b.WriteString("    \"<quote or paraphrase from resume/JD, max 200 chars>\"\n")
	b.WriteString("  ],\n")
	b.WriteString("  \"notes\": \"<brief 1-2 sentence explanation>\"\n")
	b.WriteString("}\n")

	return b.String()
}
