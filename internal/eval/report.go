// Package eval implements ranking metrics and the offline LOOCV evaluation engine.
package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SaveResults writes evaluation results to path as indented JSON, creating
// parent directories as needed.
func SaveResults(results *Results, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation results: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	return nil
}

// reportVariantOrder fixes the row order of the aggregated table. Variants not
// listed here (including the fallback key) are appended alphabetically.
var reportVariantOrder = []string{VariantEmbeddingOnly, VariantHeuristic, VariantLTR}

// WriteMarkdownReport renders the evaluation results as a human-readable
// markdown report at path.
func WriteMarkdownReport(results *Results, path string) error {
	var b strings.Builder

	b.WriteString("# Ranking Evaluation Report\n\n")
	fmt.Fprintf(&b, "- **Run ID:** %s\n", results.RunID)
	fmt.Fprintf(&b, "- **Date:** %s\n", results.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **Folds (LOOCV):** %d\n", results.NumFolds)
	fmt.Fprintf(&b, "- **Jobs:** %d\n\n", results.NumJobs)

	metricNames := sortedMetricNames(results.Aggregated)

	b.WriteString("## Aggregated Results\n\n")
	b.WriteString("Values are mean ± population standard deviation across folds.\n\n")
	b.WriteString("| Variant |")
	for _, name := range metricNames {
		fmt.Fprintf(&b, " %s |", name)
	}
	b.WriteString("\n|---|")
	for range metricNames {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, variant := range orderedVariants(results.Aggregated) {
		fmt.Fprintf(&b, "| %s |", variant)
		for _, name := range metricNames {
			summary, ok := results.Aggregated[variant][name]
			if !ok {
				b.WriteString(" - |")
				continue
			}
			fmt.Fprintf(&b, " %.4f ± %.4f |", summary.Mean, summary.Std)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if n := countFallbackFolds(results.PerFold); n > 0 {
		fmt.Fprintf(&b, "**Note:** %d of %d folds had insufficient pairwise training data; "+
			"their learned-model rows are reported under `%s` and use the heuristic ranking.\n\n",
			n, results.NumFolds, VariantLTRFallback)
	}

	b.WriteString("## Per-Fold Results\n\n")
	b.WriteString("| Fold | Resume |")
	for _, name := range metricNames {
		fmt.Fprintf(&b, " %s (heuristic) |", name)
	}
	b.WriteString("\n|---|---|")
	for range metricNames {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, fold := range results.PerFold {
		fmt.Fprintf(&b, "| %d | %s |", fold.Fold, fold.TestResumeID)
		for _, name := range metricNames {
			if v, ok := fold.Metrics[VariantHeuristic][name]; ok {
				fmt.Fprintf(&b, " %.4f |", v)
			} else {
				b.WriteString(" - |")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}

func sortedMetricNames(aggregated map[string]map[string]MetricSummary) []string {
	seen := make(map[string]bool)
	var names []string
	for _, metrics := range aggregated {
		for name := range metrics {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func orderedVariants(aggregated map[string]map[string]MetricSummary) []string {
	var ordered []string
	listed := make(map[string]bool)
	for _, v := range reportVariantOrder {
		if _, ok := aggregated[v]; ok {
			ordered = append(ordered, v)
			listed[v] = true
		}
	}
	var rest []string
	for v := range aggregated {
		if !listed[v] {
			rest = append(rest, v)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func countFallbackFolds(perFold []FoldResult) int {
	n := 0
	for _, fold := range perFold {
		if _, ok := fold.Metrics[VariantLTRFallback]; ok {
			n++
		}
	}
	return n
}
