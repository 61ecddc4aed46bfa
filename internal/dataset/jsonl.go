// Package dataset loads and validates the resume, job, and label corpora.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/types"
)

// maxLineBytes bounds a single JSONL record. Resume narrative fields can be
// long but a multi-megabyte line means a corrupt file.
const maxLineBytes = 4 * 1024 * 1024

// LoadResumes reads a JSONL file of resumes, validating each record.
// Blank lines are skipped. A record that fails to parse or validate aborts
// the load with an InputError naming the offending line.
func LoadResumes(path string) ([]types.Resume, error) {
	var resumes []types.Resume
	err := forEachLine(path, func(line []byte, lineNo int) error {
		var resume types.Resume
		if err := json.Unmarshal(line, &resume); err != nil {
			return &InputError{Path: path, Line: lineNo, Message: "malformed resume record", Cause: err}
		}
		if err := resume.Validate(); err != nil {
			return &InputError{Path: path, Line: lineNo, Message: "invalid resume record", Cause: err}
		}
		resumes = append(resumes, resume)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// LoadJobs reads a JSONL file of job postings, validating each record.
func LoadJobs(path string) ([]types.JobPosting, error) {
	var jobs []types.JobPosting
	err := forEachLine(path, func(line []byte, lineNo int) error {
		var job types.JobPosting
		if err := json.Unmarshal(line, &job); err != nil {
			return &InputError{Path: path, Line: lineNo, Message: "malformed job record", Cause: err}
		}
		if err := job.Validate(); err != nil {
			return &InputError{Path: path, Line: lineNo, Message: "invalid job record", Cause: err}
		}
		jobs = append(jobs, job)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// LoadLabels reads a JSONL file of label records and validates every label
// against the given scale. A label outside the scale aborts the load; mixing
// records from the two scales in one file is always a data error.
func LoadLabels(path string, scale types.LabelScale) ([]types.LabelRecord, error) {
	var labels []types.LabelRecord
	err := forEachLine(path, func(line []byte, lineNo int) error {
		var record types.LabelRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return &InputError{Path: path, Line: lineNo, Message: "malformed label record", Cause: err}
		}
		if err := record.Validate(scale); err != nil {
			return &InputError{Path: path, Line: lineNo, Message: "invalid label record", Cause: err}
		}
		labels = append(labels, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// forEachLine streams non-blank lines of a file to fn with 1-based line numbers.
func forEachLine(path string, fn func(line []byte, lineNo int) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(line, lineNo); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
