// Package dataset loads and validates the resume, job, and label corpora.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-matcher/internal/types"
)

// SaveLabels writes label records to path as JSONL, one record per line,
// creating parent directories as needed. An existing file is replaced.
func SaveLabels(labels []types.LabelRecord, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create labels directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create labels file %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for i := range labels {
		if err := encoder.Encode(&labels[i]); err != nil {
			return fmt.Errorf("failed to write label record %d: %w", i, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush labels file %s: %w", path, err)
	}
	return nil
}

// LabelsByPair indexes label records by (resume, job) pair for resumable
// label generation and cache-style lookups.
func LabelsByPair(labels []types.LabelRecord) map[types.PairKey]types.LabelRecord {
	indexed := make(map[types.PairKey]types.LabelRecord, len(labels))
	for _, record := range labels {
		indexed[types.PairKey{ResumeID: record.ResumeID, JobID: record.JobID}] = record
	}
	return indexed
}
