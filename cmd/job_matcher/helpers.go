// Package main implements the job_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/dataset"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

const (
	defaultVocabPath   = "data/skills_vocabulary.txt"
	defaultResumesPath = "data/resumes.jsonl"
	defaultJobsPath    = "data/jobs.jsonl"
)

// geminiAPIKey reads the Gemini API key from the environment.
func geminiAPIKey() (string, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return key, nil
}

// loadRankingSetup loads the ranking config and skill vocabulary.
// An empty config path selects the built-in defaults.
func loadRankingSetup(configPath, vocabPath string) (*config.Config, *skills.Vocabulary, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	vocab, err := skills.Load(vocabPath)
	if err != nil {
		return nil, nil, err
	}

	return cfg, vocab, nil
}

// loadCorpus loads the resume and job corpora from JSONL files.
func loadCorpus(resumesPath, jobsPath string) ([]types.Resume, []types.JobPosting, error) {
	resumes, err := dataset.LoadResumes(resumesPath)
	if err != nil {
		return nil, nil, err
	}
	jobs, err := dataset.LoadJobs(jobsPath)
	if err != nil {
		return nil, nil, err
	}
	return resumes, jobs, nil
}
