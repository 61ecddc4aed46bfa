// Package main implements the job_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/dataset"
	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/eval"
	"github.com/jonathan/job-matcher/internal/ltr"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the pairwise re-ranker model",
	Long:  "Trains the pairwise learning-to-rank model on weak labels and saves the model artifact. Training refuses to proceed when there are too few qualifying pairs; a model fit on a handful of pairs is noise.",
	RunE:  runTrain,
}

var (
	trainResumes  string
	trainJobs     string
	trainLabels   string
	trainConfig   string
	trainVocab    string
	trainOutput   string
	trainMinPairs int
	trainC        float64
)

func init() {
	trainCmd.Flags().StringVar(&trainResumes, "resumes", defaultResumesPath, "Path to resumes JSONL file")
	trainCmd.Flags().StringVarP(&trainJobs, "jobs", "j", defaultJobsPath, "Path to jobs JSONL file")
	trainCmd.Flags().StringVarP(&trainLabels, "labels", "l", "", "Path to weak labels JSONL file (required)")
	trainCmd.Flags().StringVarP(&trainConfig, "config", "c", "", "Path to ranking config JSON (default: built-in weights)")
	trainCmd.Flags().StringVar(&trainVocab, "vocab", defaultVocabPath, "Path to skill vocabulary file")
	trainCmd.Flags().StringVarP(&trainOutput, "out", "o", "models/ltr_model.json", "Path to output model file")
	trainCmd.Flags().IntVar(&trainMinPairs, "min-pairs", ltr.DefaultMinPairs, "Minimum qualifying pairs required to train")
	trainCmd.Flags().Float64Var(&trainC, "reg-c", 0, "Inverse L2 regularization strength (0 = default)")

	if err := trainCmd.MarkFlagRequired("labels"); err != nil {
		panic(fmt.Sprintf("failed to mark labels flag as required: %v", err))
	}

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	// 1. Load corpora, labels, config
	resumes, jobs, err := loadCorpus(trainResumes, trainJobs)
	if err != nil {
		return err
	}
	labels, err := dataset.LoadLabels(trainLabels, types.ScaleWeak)
	if err != nil {
		return err
	}
	cfg, vocab, err := loadRankingSetup(trainConfig, trainVocab)
	if err != nil {
		return err
	}

	// 2. Embedding cache for the full cross product
	apiKey, err := geminiAPIKey()
	if err != nil {
		return err
	}
	provider, err := embedding.NewGeminiProvider(cmd.Context(), apiKey, "")
	if err != nil {
		return err
	}
	defer provider.Close()

	_, _ = fmt.Fprintf(os.Stdout, "Computing embeddings for %d resumes x %d jobs...\n", len(resumes), len(jobs))
	cache, err := eval.BuildEmbeddingCache(cmd.Context(), provider, resumes, jobs)
	if err != nil {
		return err
	}

	// 3. Pairwise training data
	lookup := ranking.BuildFeatureLookup(resumes, jobs, cache, cfg, vocab)
	pairsX, pairsY := ltr.ConstructPairwiseData(labels, lookup, ltr.DefaultMinRelDiff, true)
	if !ltr.CheckSufficientPairs(pairsX, trainMinPairs) {
		return &ltr.InsufficientDataError{Pairs: len(pairsX), MinPairs: trainMinPairs}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Constructed %d pairwise samples from %d labels\n", len(pairsX), len(labels))

	// 4. Train and save
	model := ltr.NewModel(trainC)
	if err := model.Train(pairsX, pairsY); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	if err := model.Save(trainOutput); err != nil {
		return err
	}

	weights, err := model.FeatureWeights()
	if err != nil {
		return err
	}
	bias, err := model.Bias()
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintFeatureWeights(weights, bias)

	_, _ = fmt.Fprintf(os.Stdout, "Successfully trained model saved to %s\n", trainOutput)
	return nil
}
