// Package ltr implements pairwise learning-to-rank with a linear model.
package ltr

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Model is a pairwise learning-to-rank model: a feature scaler plus a linear
// classifier trained on feature-difference vectors.
//
// A Model starts untrained; Train moves it to the fitted state, which is
// terminal for the instance (re-training requires a new Model). Score,
// RankJobs, Save, and FeatureWeights are only valid once fitted.
type Model struct {
	scaler       *StandardScaler
	classifier   *LogisticRegression
	featureNames []string
	fitted       bool
}

// NewModel creates an untrained model with the given inverse regularization
// strength (c <= 0 selects the default).
func NewModel(c float64) *Model {
	return &Model{
		scaler:       &StandardScaler{},
		classifier:   NewLogisticRegression(c),
		featureNames: ranking.FeatureNames,
	}
}

// Train fits the scaler and classifier on pairwise difference samples.
// Returns InsufficientDataError when no samples are given and
// SingleClassError when the targets collapse to one class.
func (m *Model) Train(pairsX [][]float64, pairsY []int) error {
	if len(pairsX) == 0 {
		return &InsufficientDataError{Pairs: 0, MinPairs: 1}
	}
	if len(pairsX) != len(pairsY) {
		return fmt.Errorf("pairwise sample/target length mismatch: %d vs %d", len(pairsX), len(pairsY))
	}

	classes := make(map[int]bool, 2)
	for _, y := range pairsY {
		classes[y] = true
	}
	if len(classes) < 2 {
		only := pairsY[0]
		return &SingleClassError{Class: only}
	}

	if err := m.scaler.Fit(pairsX); err != nil {
		return fmt.Errorf("failed to fit scaler: %w", err)
	}
	scaled := m.scaler.TransformAll(pairsX)

	if err := m.classifier.Fit(scaled, pairsY); err != nil {
		return fmt.Errorf("failed to fit classifier: %w", err)
	}

	m.fitted = true
	return nil
}

// Fitted reports whether the model has been trained.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Score computes the ranking score w.x + b for a feature set. The features
// are vectorized in the trained feature-name order and scaled with the same
// transform fitted during training. Higher is better.
func (m *Model) Score(features ranking.Features) (float64, error) {
	if !m.fitted {
		return 0, &NotFittedError{Op: "scoring"}
	}

	vector := make([]float64, len(m.featureNames))
	for i, name := range m.featureNames {
		vector[i] = features.Value(name)
	}

	return m.classifier.DecisionFunction(m.scaler.Transform(vector)), nil
}

// RankedJob is a job scored by the learned model.
type RankedJob struct {
	Job      types.JobPosting
	Score    float64
	Rank     int
	Features ranking.Features
}

// RankJobs ranks jobs for a resume using the learned scoring function.
// Embedding scores are read from the cache where present (missing pairs score
// the embedding feature as 0.0). Results are sorted descending by score with
// ties keeping input order; ranks are 1-based.
func (m *Model) RankJobs(resume *types.Resume, jobs []types.JobPosting, cache map[types.PairKey]float64, cfg *config.Config, vocab *skills.Vocabulary) ([]RankedJob, error) {
	if !m.fitted {
		return nil, &NotFittedError{Op: "ranking"}
	}

	results := make([]RankedJob, 0, len(jobs))
	for i := range jobs {
		key := types.PairKey{ResumeID: resume.ResumeID, JobID: jobs[i].JobID}
		features := ranking.BuildFeatures(resume, &jobs[i], cache[key], cfg, vocab)

		score, err := m.Score(features)
		if err != nil {
			return nil, err
		}

		results = append(results, RankedJob{
			Job:      jobs[i],
			Score:    score,
			Features: features,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, nil
}

// FeatureWeights returns the learned coefficient per feature name, for
// inspection and diagnostics.
func (m *Model) FeatureWeights() (map[string]float64, error) {
	if !m.fitted {
		return nil, &NotFittedError{Op: "inspecting weights"}
	}

	weights := make(map[string]float64, len(m.featureNames))
	for i, name := range m.featureNames {
		if i < len(m.classifier.Weights) {
			weights[name] = m.classifier.Weights[i]
		}
	}
	return weights, nil
}

// Bias returns the learned intercept term.
func (m *Model) Bias() (float64, error) {
	if !m.fitted {
		return 0, &NotFittedError{Op: "inspecting weights"}
	}
	return m.classifier.Bias, nil
}

// artifact is the persisted form of a trained model. The scaler, the
// classifier, and the feature-name list travel as one unit: a model is only
// meaningful against the exact feature list it was trained with.
type artifact struct {
	Scaler       *StandardScaler     `json:"scaler"`
	Classifier   *LogisticRegression `json:"classifier"`
	FeatureNames []string            `json:"feature_names"`
}

// Save persists the trained model to path as a single JSON blob.
func (m *Model) Save(path string) error {
	if !m.fitted {
		return &NotFittedError{Op: "saving"}
	}

	data, err := json.MarshalIndent(artifact{
		Scaler:       m.scaler,
		Classifier:   m.classifier,
		FeatureNames: m.featureNames,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create model directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}
	return nil
}

// Load reads a persisted model from path. A missing path is a reported error,
// never a silent empty model.
//
// If the persisted feature-name list disagrees with the current feature
// contract, Load returns the model together with a *ModelMismatchError so the
// caller must acknowledge the mismatch (typically by warning) before using
// the model; its scores are meaningless against the current features.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %w", path, err)
	}
	if art.Scaler == nil || art.Classifier == nil {
		return nil, fmt.Errorf("model file %s is missing scaler or classifier", path)
	}

	model := &Model{
		scaler:       art.Scaler,
		classifier:   art.Classifier,
		featureNames: art.FeatureNames,
		fitted:       true,
	}

	if !equalNames(art.FeatureNames, ranking.FeatureNames) {
		return model, &ModelMismatchError{
			Expected: ranking.FeatureNames,
			Got:      art.FeatureNames,
		}
	}

	return model, nil
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
