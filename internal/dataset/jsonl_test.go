package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResumes_ParsesValidRecords(t *testing.T) {
	content := `{"resume_id":"r1","education":"BSc CS","skills":["Python"]}

{"resume_id":"r2","education":"MSc ML","projects":"RecSys","skills":["Go"]}
`
	path := writeFile(t, "resumes.jsonl", content)

	resumes, err := LoadResumes(path)
	require.NoError(t, err)

	require.Len(t, resumes, 2)
	assert.Equal(t, "r1", resumes[0].ResumeID)
	assert.Equal(t, "RecSys", resumes[1].Projects)
}

func TestLoadResumes_MalformedLineReportsLineNumber(t *testing.T) {
	content := `{"resume_id":"r1","education":"BSc","skills":["Python"]}
not json
`
	path := writeFile(t, "resumes.jsonl", content)

	_, err := LoadResumes(path)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 2, inputErr.Line)
}

func TestLoadResumes_MissingRequiredFieldFails(t *testing.T) {
	path := writeFile(t, "resumes.jsonl", `{"resume_id":"r1","skills":["Python"]}`+"\n")

	_, err := LoadResumes(path)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "invalid resume record")
}

func TestLoadJobs_ParsesValidRecords(t *testing.T) {
	content := `{"job_id":"j1","title":"ML Engineer","responsibilities":"Train models","requirements_text":"Python","skills":["Python"]}` + "\n"
	path := writeFile(t, "jobs.jsonl", content)

	jobs, err := LoadJobs(path)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "ML Engineer", jobs[0].Title)
}

func TestLoadLabels_RejectsOutOfScaleLabel(t *testing.T) {
	content := `{"resume_id":"r1","job_id":"j1","label":5,"confidence":0.9}
{"resume_id":"r1","job_id":"j2","label":0,"confidence":0.9}
`
	path := writeFile(t, "labels.jsonl", content)

	_, err := LoadLabels(path, types.ScaleWeak)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 2, inputErr.Line)
}

func TestLoadLabels_ScaleZeroToThreeAcceptsZero(t *testing.T) {
	path := writeFile(t, "labels.jsonl", `{"resume_id":"r1","job_id":"j1","label":0,"confidence":1}`+"\n")

	labels, err := LoadLabels(path, types.ScaleGraded)
	require.NoError(t, err)

	assert.Equal(t, 0, labels[0].Label)
}

func TestLoadResumes_MissingFileIsError(t *testing.T) {
	_, err := LoadResumes(filepath.Join(t.TempDir(), "missing.jsonl"))

	assert.Error(t, err)
}

func TestSaveLabels_RoundTrip(t *testing.T) {
	labels := []types.LabelRecord{
		{ResumeID: "r1", JobID: "j1", Label: 4, Confidence: 0.8, Evidence: []string{"a", "b"}},
		{ResumeID: "r1", JobID: "j2", Label: 2, Confidence: 0.3},
	}
	path := filepath.Join(t.TempDir(), "eval", "labels.jsonl")

	require.NoError(t, SaveLabels(labels, path))

	loaded, err := LoadLabels(path, types.ScaleWeak)
	require.NoError(t, err)
	assert.Equal(t, labels, loaded)
}

func TestLabelsByPair_IndexesEveryRecord(t *testing.T) {
	labels := []types.LabelRecord{
		{ResumeID: "r1", JobID: "j1", Label: 4},
		{ResumeID: "r2", JobID: "j1", Label: 1},
	}

	indexed := LabelsByPair(labels)

	require.Len(t, indexed, 2)
	assert.Equal(t, 4, indexed[types.PairKey{ResumeID: "r1", JobID: "j1"}].Label)
}
