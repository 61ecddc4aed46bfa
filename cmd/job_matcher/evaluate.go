// Package main implements the job_matcher CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/dataset"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/eval"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/retrieval"
	"github.com/jonathan/job-matcher/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate ranking quality against human-reviewed labels",
	Long:  "Runs the full ranking pipeline for every resume and scores the recommendations against 0-3 scale labels from a review CSV, reporting Precision@K and NDCG@K.",
	RunE:  runEvaluate,
}

var (
	evaluateResumes string
	evaluateJobs    string
	evaluateLabels  string
	evaluateConfig  string
	evaluateVocab   string
	evaluateTopK    int
	evaluateOutput  string
)

// evaluateKValues are the cutoffs reported by the 0-3 harness.
var evaluateKValues = []int{5, 10, 15}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateResumes, "resumes", defaultResumesPath, "Path to resumes JSONL file")
	evaluateCmd.Flags().StringVarP(&evaluateJobs, "jobs", "j", defaultJobsPath, "Path to jobs JSONL file")
	evaluateCmd.Flags().StringVarP(&evaluateLabels, "labels", "l", "", "Path to review labels CSV file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateConfig, "config", "c", "", "Path to ranking config JSON (default: built-in weights)")
	evaluateCmd.Flags().StringVar(&evaluateVocab, "vocab", defaultVocabPath, "Path to skill vocabulary file")
	evaluateCmd.Flags().IntVarP(&evaluateTopK, "top-k", "k", 15, "Number of recommendations to score per resume")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output results JSON file (optional)")

	if err := evaluateCmd.MarkFlagRequired("labels"); err != nil {
		panic(fmt.Sprintf("failed to mark labels flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

// evaluateResults is the JSON artifact written by the evaluate command.
type evaluateResults struct {
	NumResumes  int                           `json:"num_resumes"`
	NumJobs     int                           `json:"num_jobs"`
	LabelSource string                        `json:"label_source"`
	Aggregated  eval.ResumeMetrics            `json:"aggregated_metrics"`
	PerResume   map[string]eval.ResumeMetrics `json:"per_resume_metrics"`
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	// 1. Load corpora and labels
	resumes, jobs, err := loadCorpus(evaluateResumes, evaluateJobs)
	if err != nil {
		return err
	}
	labels, usingFinal, err := dataset.LoadGradedLabelsCSV(evaluateLabels)
	if err != nil {
		return err
	}
	cfg, vocab, err := loadRankingSetup(evaluateConfig, evaluateVocab)
	if err != nil {
		return err
	}

	labelSource := "suggested_label"
	if usingFinal {
		labelSource = "final_label"
	}
	_, _ = fmt.Fprintf(os.Stdout, "Loaded %d resumes, %d jobs; label source: %s\n", len(resumes), len(jobs), labelSource)

	// 2. Embedding provider
	apiKey, err := geminiAPIKey()
	if err != nil {
		return err
	}
	provider, err := embedding.NewGeminiProvider(cmd.Context(), apiKey, "")
	if err != nil {
		return err
	}
	defer provider.Close()

	// 3. Rank and score each resume
	var allMetrics []eval.ResumeMetrics
	perResume := make(map[string]eval.ResumeMetrics)

	for i := range resumes {
		resume := &resumes[i]
		resumeLabels := labels.LabelsFor(resume.ResumeID)
		if resumeLabels == nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: no labels for resume %s, skipping\n", resume.ResumeID)
			continue
		}

		matches, err := retrieval.RankJobs(cmd.Context(), provider, resume, jobs, 0)
		if err != nil {
			return fmt.Errorf("failed to rank jobs for resume %s: %w", resume.ResumeID, err)
		}
		ranked := ranking.RankWithFeatures(resume, matches, cfg, vocab)

		recommendedIDs := make([]string, 0, evaluateTopK)
		for _, r := range ranked.Ranked {
			if len(recommendedIDs) >= evaluateTopK {
				break
			}
			recommendedIDs = append(recommendedIDs, r.Job.JobID)
		}

		metrics := eval.MetricsForResume(recommendedIDs, resumeLabels, evaluateKValues, types.ScaleGraded)
		allMetrics = append(allMetrics, metrics)
		perResume[resume.ResumeID] = metrics

		_, _ = fmt.Fprintf(os.Stdout, "Resume %s: P@5=%.3f NDCG@5=%.3f\n",
			resume.ResumeID, metrics.Precision[5], metrics.NDCG[5])
	}

	if len(allMetrics) == 0 {
		return fmt.Errorf("no resumes had labels; nothing to evaluate")
	}

	// 4. Aggregate and report
	aggregated := eval.AggregateResumeMetrics(allMetrics)
	_, _ = fmt.Fprintf(os.Stdout, "\nAggregated metrics (mean over %d resumes):\n", len(allMetrics))
	for _, k := range evaluateKValues {
		_, _ = fmt.Fprintf(os.Stdout, "  Precision@%-2d: %.4f   NDCG@%-2d: %.4f\n",
			k, aggregated.Precision[k], k, aggregated.NDCG[k])
	}

	if evaluateOutput == "" {
		return nil
	}

	results := evaluateResults{
		NumResumes:  len(allMetrics),
		NumJobs:     len(jobs),
		LabelSource: labelSource,
		Aggregated:  aggregated,
		PerResume:   perResume,
	}
	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation results: %w", err)
	}

	outputDir := filepath.Dir(evaluateOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(evaluateOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", evaluateOutput, err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", evaluateOutput)

	return nil
}
