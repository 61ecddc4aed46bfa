package ltr

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// trainableData builds a small separable pairwise dataset in the current
// feature dimensionality.
func trainableData() ([][]float64, []int) {
	dim := len(ranking.FeatureNames)
	positive := make([]float64, dim)
	negative := make([]float64, dim)
	for i := range positive {
		positive[i] = 0.5
		negative[i] = -0.5
	}

	var pairsX [][]float64
	var pairsY []int
	for i := 0; i < 6; i++ {
		pairsX = append(pairsX, positive, negative)
		pairsY = append(pairsY, 1, 0)
	}
	return pairsX, pairsY
}

func TestModel_TrainEmptyDataReturnsInsufficientDataError(t *testing.T) {
	model := NewModel(0)

	err := model.Train(nil, nil)

	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.False(t, model.Fitted())
}

func TestModel_TrainSingleClassReturnsSingleClassError(t *testing.T) {
	model := NewModel(0)
	pairsX := [][]float64{{0.5, 0.5}, {0.4, 0.4}}
	pairsY := []int{1, 1}

	err := model.Train(pairsX, pairsY)

	var singleClass *SingleClassError
	require.ErrorAs(t, err, &singleClass)
	assert.Equal(t, 1, singleClass.Class)
}

func TestModel_ScoreBeforeTrainingFails(t *testing.T) {
	model := NewModel(0)

	_, err := model.Score(ranking.Features{})

	var notFitted *NotFittedError
	assert.ErrorAs(t, err, &notFitted)
}

func TestModel_ScoreOrdersBetterFeaturesHigher(t *testing.T) {
	model := NewModel(0)
	pairsX, pairsY := trainableData()
	require.NoError(t, model.Train(pairsX, pairsY))

	strong, err := model.Score(ranking.Features{Embedding: 0.9, KeywordBonus: 0.8})
	require.NoError(t, err)
	weak, err := model.Score(ranking.Features{Embedding: 0.1, KeywordBonus: 0.0})
	require.NoError(t, err)

	assert.Greater(t, strong, weak)
}

func TestModel_SaveLoadRoundTripPreservesScores(t *testing.T) {
	model := NewModel(0)
	pairsX, pairsY := trainableData()
	require.NoError(t, model.Train(pairsX, pairsY))

	path := filepath.Join(t.TempDir(), "models", "ltr_model.json")
	require.NoError(t, model.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	features := ranking.Features{Embedding: 0.7, KeywordBonus: 0.4}
	original, err := model.Score(features)
	require.NoError(t, err)
	restored, err := loaded.Score(features)
	require.NoError(t, err)

	assert.InDelta(t, original, restored, 1e-12)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read model file")
}

func TestLoad_FeatureMismatchReturnsModelAndError(t *testing.T) {
	art := artifact{
		Scaler:       &StandardScaler{Mean: []float64{0}, Std: []float64{1}},
		Classifier:   &LogisticRegression{Weights: []float64{1}, C: 0.1},
		FeatureNames: []string{"legacy_feature"},
	}
	data, err := json.Marshal(art)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "old_model.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	model, err := Load(path)

	var mismatch *ModelMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.NotNil(t, model)
	assert.Equal(t, []string{"legacy_feature"}, mismatch.Got)
}

func TestModel_RankJobsUsesCacheAndAssignsRanks(t *testing.T) {
	model := NewModel(0)
	pairsX, pairsY := trainableData()
	require.NoError(t, model.Train(pairsX, pairsY))

	cfg := config.DefaultConfig()
	vocab := skills.New([]string{"Python"})
	resume := &types.Resume{ResumeID: "r1", Skills: []string{"Python"}}
	jobs := []types.JobPosting{
		{JobID: "low", Skills: []string{"Python"}},
		{JobID: "high", Skills: []string{"Python"}},
	}
	cache := map[types.PairKey]float64{
		{ResumeID: "r1", JobID: "low"}:  0.1,
		{ResumeID: "r1", JobID: "high"}: 0.9,
	}

	ranked, err := model.RankJobs(resume, jobs, cache, cfg, vocab)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Job.JobID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestModel_FeatureWeightsNamesMatchContract(t *testing.T) {
	model := NewModel(0)
	pairsX, pairsY := trainableData()
	require.NoError(t, model.Train(pairsX, pairsY))

	weights, err := model.FeatureWeights()
	require.NoError(t, err)

	assert.Len(t, weights, len(ranking.FeatureNames))
	for _, name := range ranking.FeatureNames {
		assert.Contains(t, weights, name)
	}
}
