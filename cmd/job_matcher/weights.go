// Package main implements the job_matcher CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ltr"
	"github.com/jonathan/job-matcher/internal/observability"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Inspect the coefficients of a trained re-ranker model",
	RunE:  runWeights,
}

var weightsModel string

func init() {
	weightsCmd.Flags().StringVarP(&weightsModel, "model", "m", "models/ltr_model.json", "Path to trained model file")

	rootCmd.AddCommand(weightsCmd)
}

func runWeights(_ *cobra.Command, _ []string) error {
	model, err := ltr.Load(weightsModel)
	if err != nil {
		var mismatch *ltr.ModelMismatchError
		if errors.As(err, &mismatch) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", mismatch)
		} else {
			return err
		}
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
	return nil
}
