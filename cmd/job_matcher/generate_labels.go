// Package main implements the job_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/dataset"
	"github.com/jonathan/job-matcher/internal/labeling"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/types"
)

var generateLabelsCmd = &cobra.Command{
	Use:   "generate-labels",
	Short: "Generate LLM weak labels for every resume-job pair",
	Long:  "Labels every (resume, job) combination on the 1-5 scale using an LLM judge that sees only raw resume and job content. An interrupted run can be resumed: pairs already present in the output file are reused.",
	RunE:  runGenerateLabels,
}

var (
	generateLabelsResumes string
	generateLabelsJobs    string
	generateLabelsOutput  string
	generateLabelsModel   string
)

func init() {
	generateLabelsCmd.Flags().StringVar(&generateLabelsResumes, "resumes", defaultResumesPath, "Path to resumes JSONL file")
	generateLabelsCmd.Flags().StringVarP(&generateLabelsJobs, "jobs", "j", defaultJobsPath, "Path to jobs JSONL file")
	generateLabelsCmd.Flags().StringVarP(&generateLabelsOutput, "out", "o", "eval/labels_suggested.jsonl", "Path to output labels JSONL file")
	generateLabelsCmd.Flags().StringVarP(&generateLabelsModel, "model", "m", "", "Override the judge model name (default: lite tier model)")

	rootCmd.AddCommand(generateLabelsCmd)
}

func runGenerateLabels(cmd *cobra.Command, _ []string) error {
	// 1. Load corpora
	resumes, jobs, err := loadCorpus(generateLabelsResumes, generateLabelsJobs)
	if err != nil {
		return err
	}
	for i := range resumes {
		if resumes[i].ResumeID == "" {
			return fmt.Errorf("resume at index %d has no resume_id; identifiers are required for labeling", i)
		}
	}
	for i := range jobs {
		if jobs[i].JobID == "" {
			return fmt.Errorf("job at index %d has no job_id; identifiers are required for labeling", i)
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Labeling %d resumes x %d jobs = %d pairs\n",
		len(resumes), len(jobs), len(resumes)*len(jobs))

	// 2. Existing labels enable resuming an interrupted run
	existing := map[types.PairKey]types.LabelRecord{}
	if _, err := os.Stat(generateLabelsOutput); err == nil {
		previous, err := dataset.LoadLabels(generateLabelsOutput, types.ScaleWeak)
		if err != nil {
			return fmt.Errorf("existing labels file is unusable, move it aside or fix it: %w", err)
		}
		existing = dataset.LabelsByPair(previous)
		_, _ = fmt.Fprintf(os.Stdout, "Found %d existing labels, reusing them\n", len(existing))
	}

	// 3. LLM judge
	apiKey, err := geminiAPIKey()
	if err != nil {
		return err
	}
	llmConfig := llm.DefaultConfig()
	if generateLabelsModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, generateLabelsModel)
	}
	client, err := llm.NewGeminiClient(cmd.Context(), llmConfig, apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	// 4. Generate and save
	generator := labeling.NewGenerator(client)
	labels, stats, err := generator.GenerateAll(cmd.Context(), resumes, jobs, existing)
	if err != nil {
		return err
	}
	if err := dataset.SaveLabels(labels, generateLabelsOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Labeled %d pairs (%d reused, %d generated, %d fallbacks) to %s\n",
		stats.Total, stats.Reused, stats.Generated, stats.Fallbacks, generateLabelsOutput)

	distribution := make(map[int]int)
	for _, record := range labels {
		distribution[record.Label]++
	}
	_, _ = fmt.Fprintf(os.Stdout, "Label distribution:\n")
	for label := types.ScaleWeak.Min(); label <= types.ScaleWeak.Max(); label++ {
		_, _ = fmt.Fprintf(os.Stdout, "  %d: %d\n", label, distribution[label])
	}

	// 5. Coverage check on the written labels
	if err := dataset.ValidateCoverage(labels, resumes, jobs); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Coverage validation passed: all pairs labeled\n")

	return nil
}
