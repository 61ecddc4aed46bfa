// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/eval"
	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedJobs outputs the top ranked jobs with scores and matched skills.
func (p *Printer) PrintRankedJobs(ranked *types.RankedJobs) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := ranked.Ranked[i]
		title := job.Job.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", job.Rank, title))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (emb %.2f, overlap %.2f)\n",
			job.FinalScore, job.EmbeddingScore, job.SkillOverlap))
		if len(job.MatchedSkills) > 0 {
			skills := strings.Join(job.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", sb.String())
}

// PrintFeatureWeights outputs the learned model coefficients sorted by
// absolute magnitude.
func (p *Printer) PrintFeatureWeights(weights map[string]float64, bias float64) {
	if len(weights) == 0 {
		return
	}

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		wi, wj := weights[names[i]], weights[names[j]]
		if wi < 0 {
			wi = -wi
		}
		if wj < 0 {
			wj = -wj
		}
		return wi > wj
	})

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%-16s %+.4f\n", name, weights[name]))
	}
	sb.WriteString(fmt.Sprintf("%-16s %+.4f", "bias", bias))

	p.printBox("LEARNED FEATURE WEIGHTS", sb.String())
}

// PrintEvalSummary outputs aggregated evaluation metrics per variant.
func (p *Printer) PrintEvalSummary(results *eval.Results) {
	if results == nil || len(results.Aggregated) == 0 {
		return
	}

	variants := make([]string, 0, len(results.Aggregated))
	for variant := range results.Aggregated {
		variants = append(variants, variant)
	}
	sort.Strings(variants)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Folds: %d   Jobs: %d\n", results.NumFolds, results.NumJobs))

	for _, variant := range variants {
		sb.WriteString(fmt.Sprintf("\n%s\n", variant))

		metrics := results.Aggregated[variant]
		names := make([]string, 0, len(metrics))
		for name := range metrics {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			summary := metrics[name]
			sb.WriteString(fmt.Sprintf("  %-14s %.4f ± %.4f\n", name, summary.Mean, summary.Std))
		}
	}

	p.printBox("EVALUATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
