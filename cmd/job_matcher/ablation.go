// Package main implements the job_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/dataset"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/eval"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var ablationCmd = &cobra.Command{
	Use:   "ablation",
	Short: "Run the LOOCV ablation over ranking variants",
	Long:  "Runs Leave-One-Out Cross-Validation on weak labels, comparing embedding-only, heuristic, and learned ranking variants, and writes results JSON plus a markdown report.",
	RunE:  runAblation,
}

var (
	ablationResumes    string
	ablationJobs       string
	ablationLabels     string
	ablationConfig     string
	ablationVocab      string
	ablationOutput     string
	ablationReport     string
	ablationSequential bool
)

func init() {
	ablationCmd.Flags().StringVar(&ablationResumes, "resumes", defaultResumesPath, "Path to resumes JSONL file")
	ablationCmd.Flags().StringVarP(&ablationJobs, "jobs", "j", defaultJobsPath, "Path to jobs JSONL file")
	ablationCmd.Flags().StringVarP(&ablationLabels, "labels", "l", "", "Path to weak labels JSONL file (required)")
	ablationCmd.Flags().StringVarP(&ablationConfig, "config", "c", "", "Path to ranking config JSON (default: built-in weights)")
	ablationCmd.Flags().StringVar(&ablationVocab, "vocab", defaultVocabPath, "Path to skill vocabulary file")
	ablationCmd.Flags().StringVarP(&ablationOutput, "out", "o", "eval/ablation_results.json", "Path to output results JSON file")
	ablationCmd.Flags().StringVar(&ablationReport, "report", "eval/ablation_report.md", "Path to output markdown report (empty = skip)")
	ablationCmd.Flags().BoolVar(&ablationSequential, "sequential", false, "Run folds one at a time instead of in parallel")

	if err := ablationCmd.MarkFlagRequired("labels"); err != nil {
		panic(fmt.Sprintf("failed to mark labels flag as required: %v", err))
	}

	rootCmd.AddCommand(ablationCmd)
}

func runAblation(cmd *cobra.Command, _ []string) error {
	// 1. Load corpora and labels
	resumes, jobs, err := loadCorpus(ablationResumes, ablationJobs)
	if err != nil {
		return err
	}
	labels, err := dataset.LoadLabels(ablationLabels, types.ScaleWeak)
	if err != nil {
		return err
	}
	cfg, vocab, err := loadRankingSetup(ablationConfig, ablationVocab)
	if err != nil {
		return err
	}

	// 2. Full label coverage is a precondition for LOOCV
	if err := dataset.ValidateCoverage(labels, resumes, jobs); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Coverage validated: %d labels over %d resumes x %d jobs\n",
		len(labels), len(resumes), len(jobs))

	// 3. Embedding cache for the full cross product
	apiKey, err := geminiAPIKey()
	if err != nil {
		return err
	}
	provider, err := embedding.NewGeminiProvider(cmd.Context(), apiKey, "")
	if err != nil {
		return err
	}
	defer provider.Close()

	_, _ = fmt.Fprintf(os.Stdout, "Computing embeddings...\n")
	cache, err := eval.BuildEmbeddingCache(cmd.Context(), provider, resumes, jobs)
	if err != nil {
		return err
	}

	// 4. Run LOOCV
	engine := eval.NewEngine(cfg, vocab)
	engine.Parallel = !ablationSequential

	_, _ = fmt.Fprintf(os.Stdout, "Running %d LOOCV folds...\n", len(resumes))
	results, err := engine.Run(cmd.Context(), resumes, jobs, labels, cache)
	if err != nil {
		return err
	}

	// 5. Write artifacts
	if err := eval.SaveResults(results, ablationOutput); err != nil {
		return err
	}
	schemaPath := schemas.ResolveSchemaPath("schemas/eval_results.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, ablationOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if ablationReport != "" {
		if err := eval.WriteMarkdownReport(results, ablationReport); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", ablationReport)
	}

	observability.NewPrinter(os.Stdout).PrintEvalSummary(results)
	_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", ablationOutput)

	return nil
}
