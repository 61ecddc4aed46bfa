package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestNew_DeduplicatesCaseInsensitively(t *testing.T) {
	vocab := New([]string{"Python", "python", "PYTHON", "Go"})

	assert.Equal(t, 2, vocab.Len())
	assert.Equal(t, []string{"Python", "Go"}, vocab.Terms())
}

func TestNew_FirstCasingWins(t *testing.T) {
	vocab := New([]string{"pytorch", "PyTorch"})

	canonical, ok := vocab.Canonical("PYTORCH")
	require.True(t, ok)
	assert.Equal(t, "pytorch", canonical)
}

func TestNew_SkipsBlankTerms(t *testing.T) {
	vocab := New([]string{"", "  ", "Go"})

	assert.Equal(t, 1, vocab.Len())
}

func TestNormalize_DropsUnknownSkills(t *testing.T) {
	vocab := New([]string{"Python", "Machine Learning"})

	normalized := vocab.Normalize([]string{"python", "COBOL", "machine learning"})

	assert.Len(t, normalized, 2)
	assert.True(t, normalized["Python"])
	assert.True(t, normalized["Machine Learning"])
	assert.False(t, normalized["COBOL"])
}

func TestExpandWithJobSkills_LeavesReceiverUntouched(t *testing.T) {
	vocab := New([]string{"Python"})
	jobs := []types.JobPosting{
		{Skills: []string{"Rust", "Python"}},
	}

	expanded := vocab.ExpandWithJobSkills(jobs)

	assert.Equal(t, 1, vocab.Len())
	assert.Equal(t, 2, expanded.Len())
	assert.True(t, expanded.Contains("Rust"))
}

func TestExpandWithJobSkills_Idempotent(t *testing.T) {
	vocab := New([]string{"Python"})
	jobs := []types.JobPosting{
		{Skills: []string{"Rust", "Kafka"}},
	}

	once := vocab.ExpandWithJobSkills(jobs)
	twice := once.ExpandWithJobSkills(jobs)

	assert.Equal(t, once.Terms(), twice.Terms())
}

func TestExpandWithJobSkills_KeepsJobCasingForNewTerms(t *testing.T) {
	vocab := New([]string{"Python"})
	jobs := []types.JobPosting{
		{Skills: []string{"gRPC"}},
	}

	expanded := vocab.ExpandWithJobSkills(jobs)

	canonical, ok := expanded.Canonical("grpc")
	require.True(t, ok)
	assert.Equal(t, "gRPC", canonical)
}

func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	content := "# canonical skills\nPython\n\n  Go  \n# trailing comment\nSQL\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	vocab, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Go", "SQL"}, vocab.Terms())
}

func TestLoad_MissingFileReturnsLoadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}
