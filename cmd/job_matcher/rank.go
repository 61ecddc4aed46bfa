// Package main implements the job_matcher CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/dataset"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/ltr"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/retrieval"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job postings against a resume",
	Long:  "Ranks job postings against a resume using embedding similarity re-ranked by explainable heuristic features, optionally applying a trained pairwise re-ranker on top.",
	RunE:  runRank,
}

var (
	rankResume  string
	rankJobs    string
	rankConfig  string
	rankVocab   string
	rankModel   string
	rankTopK    int
	rankOutput  string
	rankVerbose bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankResume, "resume", "r", "", "Path to input resume JSON file (required)")
	rankCmd.Flags().StringVarP(&rankJobs, "jobs", "j", defaultJobsPath, "Path to jobs JSONL file")
	rankCmd.Flags().StringVarP(&rankConfig, "config", "c", "", "Path to ranking config JSON (default: built-in weights)")
	rankCmd.Flags().StringVar(&rankVocab, "vocab", defaultVocabPath, "Path to skill vocabulary file")
	rankCmd.Flags().StringVarP(&rankModel, "model", "m", "", "Path to trained re-ranker model (optional)")
	rankCmd.Flags().IntVarP(&rankTopK, "top-k", "k", 0, "Number of results to keep (0 = all)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked jobs JSON file (required)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted ranking summary")

	if err := rankCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

// rankedJobsOutput is the JSON artifact written by the rank command.
type rankedJobsOutput struct {
	ResumeID string           `json:"resume_id,omitempty"`
	Ranked   []types.RankedJob `json:"ranked"`
}

func runRank(cmd *cobra.Command, _ []string) error {
	// 1. Load resume
	resumeContent, err := os.ReadFile(rankResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", rankResume, err)
	}
	var resume types.Resume
	if err := json.Unmarshal(resumeContent, &resume); err != nil {
		return fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return fmt.Errorf("invalid resume: %w", err)
	}

	// 2. Load jobs, config, vocabulary
	jobs, err := dataset.LoadJobs(rankJobs)
	if err != nil {
		return err
	}
	cfg, vocab, err := loadRankingSetup(rankConfig, rankVocab)
	if err != nil {
		return err
	}

	// 3. Embedding retrieval
	apiKey, err := geminiAPIKey()
	if err != nil {
		return err
	}
	provider, err := embedding.NewGeminiProvider(cmd.Context(), apiKey, "")
	if err != nil {
		return err
	}
	defer provider.Close()

	matches, err := retrieval.RankJobs(cmd.Context(), provider, &resume, jobs, 0)
	if err != nil {
		return fmt.Errorf("failed to rank jobs by embedding: %w", err)
	}

	// 4. Heuristic re-ranking with explainable features
	ranked := ranking.RankWithFeatures(&resume, matches, cfg, vocab)

	// 5. Optional learned re-ranking
	if rankModel != "" {
		if err := applyLearnedReranker(ranked, rankModel); err != nil {
			return err
		}
	}

	if rankTopK > 0 && len(ranked.Ranked) > rankTopK {
		ranked.Ranked = ranked.Ranked[:rankTopK]
	}

	// 6. Write output
	output := rankedJobsOutput{ResumeID: resume.ResumeID, Ranked: ranked.Ranked}
	jsonOutput, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked jobs to JSON: %w", err)
	}

	outputDir := filepath.Dir(rankOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(rankOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write ranked jobs to output file %s: %w", rankOutput, err)
	}

	// 7. Validate output against schema (non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/ranked_jobs.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, rankOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if rankVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRankedJobs(ranked)
		if len(ranked.Ranked) > 0 {
			fmt.Fprintln(os.Stdout)
			fmt.Fprintln(os.Stdout, ranking.Explain(&ranked.Ranked[0], cfg))
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d jobs to %s\n", len(ranked.Ranked), rankOutput)

	return nil
}

// applyLearnedReranker re-orders an already feature-scored ranking by the
// trained model's scores. The heuristic feature breakdown is kept on each
// entry; only FinalScore and Rank change.
func applyLearnedReranker(ranked *types.RankedJobs, modelPath string) error {
	model, err := ltr.Load(modelPath)
	if err != nil {
		var mismatch *ltr.ModelMismatchError
		if errors.As(err, &mismatch) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", mismatch)
		} else {
			return fmt.Errorf("failed to load re-ranker model: %w", err)
		}
	}

	for i := range ranked.Ranked {
		entry := &ranked.Ranked[i]
		score, err := model.Score(ranking.Features{
			Embedding:    entry.EmbeddingScore,
			SkillOverlap: entry.SkillOverlap,
			KeywordBonus: entry.KeywordBonus,
			GapPenalty:   entry.GapPenalty,
		})
		if err != nil {
			return fmt.Errorf("failed to score job %s: %w", entry.Job.JobID, err)
		}
		entry.FinalScore = score
	}

	sort.SliceStable(ranked.Ranked, func(i, j int) bool {
		return ranked.Ranked[i].FinalScore > ranked.Ranked[j].FinalScore
	})
	for i := range ranked.Ranked {
		ranked.Ranked[i].Rank = i + 1
	}
	return nil
}
