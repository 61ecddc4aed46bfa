package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0.5, cfg.Weights.Embedding)
	assert.Equal(t, 10, cfg.Normalization.MaxKeywords)
}

func TestLoadConfig_ReadsJSONFile(t *testing.T) {
	content := `{
		"weights": {"embedding": 0.6, "skill_overlap": 0.2, "keyword_bonus": 0.1, "gap_penalty": 0.1},
		"keywords": {"high_priority": ["Go"], "high_priority_multiplier": 2.0},
		"gap_penalty": {"critical_skills": ["Go"], "critical_penalty_multiplier": 1.5},
		"normalization": {"max_keywords": 8, "max_gaps": 8}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Weights.Embedding)
	assert.Equal(t, []string{"Go"}, cfg.Keywords.HighPriority)
	assert.Equal(t, 8, cfg.Normalization.MaxGaps)
}

func TestLoadConfig_EmptyPathFails(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestValidate_RejectsLowMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keywords.HighPriorityMultiplier = 0.5

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "high_priority_multiplier")
}

func TestValidate_RejectsNonPositiveNormalization(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalization.MaxGaps = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_gaps")
}
