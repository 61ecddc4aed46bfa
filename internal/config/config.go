// Package config provides ranking configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the ranking configuration loaded from a JSON file.
// It is caller-constructed, loaded once, and treated as read-only by every
// component that receives it.
type Config struct {
	Weights       Weights       `json:"weights"`
	Keywords      Keywords      `json:"keywords"`
	GapPenalty    GapPenalty    `json:"gap_penalty"`
	Normalization Normalization `json:"normalization"`
}

// Weights are the four linear coefficients of the heuristic final score.
// GapPenalty is always subtracted; the other three are added.
type Weights struct {
	Embedding    float64 `json:"embedding"`
	SkillOverlap float64 `json:"skill_overlap"`
	KeywordBonus float64 `json:"keyword_bonus"`
	GapPenalty   float64 `json:"gap_penalty"`
}

// Keywords configures the high-priority keyword bonus.
type Keywords struct {
	HighPriority           []string `json:"high_priority"`
	HighPriorityMultiplier float64  `json:"high_priority_multiplier"`
}

// GapPenalty configures the missing-skill penalty.
type GapPenalty struct {
	CriticalSkills            []string `json:"critical_skills"`
	CriticalPenaltyMultiplier float64  `json:"critical_penalty_multiplier"`
}

// Normalization holds the constants that bound keyword bonus and gap penalty to [0,1].
type Normalization struct {
	MaxKeywords int `json:"max_keywords"`
	MaxGaps     int `json:"max_gaps"`
}

// DefaultConfig returns a configuration with the standard weights and constants.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Embedding:    0.5,
			SkillOverlap: 0.25,
			KeywordBonus: 0.15,
			GapPenalty:   0.1,
		},
		Keywords: Keywords{
			HighPriority:           []string{"Python", "PyTorch", "TensorFlow", "Machine Learning", "Deep Learning", "NLP"},
			HighPriorityMultiplier: 2.0,
		},
		GapPenalty: GapPenalty{
			CriticalSkills:            []string{"Python", "Machine Learning"},
			CriticalPenaltyMultiplier: 2.0,
		},
		Normalization: Normalization{
			MaxKeywords: 10,
			MaxGaps:     10,
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Keywords.HighPriorityMultiplier < 1.0 {
		return fmt.Errorf("config error: 'high_priority_multiplier' must be >= 1.0")
	}
	if c.GapPenalty.CriticalPenaltyMultiplier < 1.0 {
		return fmt.Errorf("config error: 'critical_penalty_multiplier' must be >= 1.0")
	}
	if c.Normalization.MaxKeywords <= 0 {
		return fmt.Errorf("config error: 'max_keywords' must be positive")
	}
	if c.Normalization.MaxGaps <= 0 {
		return fmt.Errorf("config error: 'max_gaps' must be positive")
	}
	return nil
}
