// Package main provides the entry point for the job-matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_matcher",
	Short: "Resume-to-job matching and ranking toolkit",
	Long:  "job_matcher ranks job postings against resumes using embedding similarity, explainable heuristic features, and an optional learned pairwise re-ranker, with an offline evaluation harness.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
