// Package dataset loads and validates the resume, job, and label corpora.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// GradedLabels maps resume_id -> job_id -> label on the 0-3 scale.
type GradedLabels map[string]map[string]int

// LabelsFor returns the label map for one resume, or nil when the resume has
// no labels at all.
func (g GradedLabels) LabelsFor(resumeID string) map[string]int {
	return g[resumeID]
}

// LoadGradedLabelsCSV reads a human-review label CSV on the 0-3 scale.
//
// Each row carries a suggested_label (machine-generated) and an optional
// final_label (human-corrected). When any row has a non-blank final_label the
// whole file is treated as human-corrected: per row, final_label wins where
// present, suggested_label fills the rest. The second return value reports
// whether any final labels were used, so callers can surface the label source.
func LoadGradedLabelsCSV(path string) (GradedLabels, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open labels file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, false, &InputError{Path: path, Line: 1, Message: "missing CSV header", Cause: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"resume_id", "job_id", "suggested_label"} {
		if _, ok := columns[required]; !ok {
			return nil, false, &InputError{Path: path, Line: 1, Message: fmt.Sprintf("missing required column %q", required)}
		}
	}
	finalCol, hasFinalCol := columns["final_label"]

	labels := make(GradedLabels)
	usingFinal := false
	lineNo := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			return nil, false, &InputError{Path: path, Line: lineNo, Message: "malformed CSV row", Cause: err}
		}

		resumeID := strings.TrimSpace(row[columns["resume_id"]])
		jobID := strings.TrimSpace(row[columns["job_id"]])
		if resumeID == "" || jobID == "" {
			return nil, false, &InputError{Path: path, Line: lineNo, Message: "row is missing resume_id or job_id"}
		}

		raw := strings.TrimSpace(row[columns["suggested_label"]])
		if hasFinalCol && finalCol < len(row) {
			if final := strings.TrimSpace(row[finalCol]); final != "" {
				raw = final
				usingFinal = true
			}
		}

		label, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, &InputError{Path: path, Line: lineNo, Message: fmt.Sprintf("label %q is not an integer", raw), Cause: err}
		}
		if !types.ScaleGraded.Contains(label) {
			return nil, false, &InputError{Path: path, Line: lineNo, Message: fmt.Sprintf("label %d out of range for scale %s", label, types.ScaleGraded)}
		}

		if labels[resumeID] == nil {
			labels[resumeID] = make(map[string]int)
		}
		labels[resumeID][jobID] = label
	}

	return labels, usingFinal, nil
}
