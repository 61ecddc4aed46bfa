package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelScale_Bounds(t *testing.T) {
	assert.Equal(t, 0, ScaleGraded.Min())
	assert.Equal(t, 3, ScaleGraded.Max())
	assert.Equal(t, 1, ScaleWeak.Min())
	assert.Equal(t, 5, ScaleWeak.Max())
}

func TestLabelScale_Contains(t *testing.T) {
	assert.True(t, ScaleGraded.Contains(0))
	assert.True(t, ScaleGraded.Contains(3))
	assert.False(t, ScaleGraded.Contains(4))

	assert.False(t, ScaleWeak.Contains(0))
	assert.True(t, ScaleWeak.Contains(1))
	assert.True(t, ScaleWeak.Contains(5))
	assert.False(t, ScaleWeak.Contains(6))
}

func TestLabelScale_RelevantThreshold(t *testing.T) {
	assert.Equal(t, 2, ScaleGraded.RelevantThreshold())
	assert.Equal(t, 4, ScaleWeak.RelevantThreshold())
}

func TestLabelScale_NeutralLabel(t *testing.T) {
	assert.Equal(t, 1, ScaleGraded.NeutralLabel())
	assert.Equal(t, 2, ScaleWeak.NeutralLabel())
}

func TestLabelScale_GainForm(t *testing.T) {
	assert.False(t, ScaleGraded.ExponentialGain())
	assert.True(t, ScaleWeak.ExponentialGain())
}

func TestLabelRecord_ValidateAcceptsValidRecord(t *testing.T) {
	record := LabelRecord{ResumeID: "r1", JobID: "j1", Label: 4, Confidence: 0.9}

	assert.NoError(t, record.Validate(ScaleWeak))
}

func TestLabelRecord_ValidateRejectsMissingIDs(t *testing.T) {
	record := LabelRecord{JobID: "j1", Label: 4, Confidence: 0.9}

	assert.Error(t, record.Validate(ScaleWeak))
}

func TestLabelRecord_ValidateRejectsConfidenceOutOfRange(t *testing.T) {
	record := LabelRecord{ResumeID: "r1", JobID: "j1", Label: 4, Confidence: 1.5}

	assert.Error(t, record.Validate(ScaleWeak))
}

func TestLabelRecord_ValidateChecksScale(t *testing.T) {
	record := LabelRecord{ResumeID: "r1", JobID: "j1", Label: 5, Confidence: 0.9}

	assert.NoError(t, record.Validate(ScaleWeak))
	require.Error(t, record.Validate(ScaleGraded))
	assert.Contains(t, record.Validate(ScaleGraded).Error(), "out of range")
}

func TestResume_ValidateRequiresEducationAndSkills(t *testing.T) {
	valid := Resume{ResumeID: "r1", Education: "BSc", Skills: []string{"Python"}}
	assert.NoError(t, valid.Validate())

	missing := Resume{ResumeID: "r1", Skills: []string{"Python"}}
	assert.Error(t, missing.Validate())
}

func TestJobPosting_ValidateRequiresCoreFields(t *testing.T) {
	valid := JobPosting{Title: "ML Engineer", Responsibilities: "Train", RequirementsText: "Python", Skills: []string{"Python"}}
	assert.NoError(t, valid.Validate())

	missing := JobPosting{Title: "ML Engineer", Skills: []string{"Python"}}
	assert.Error(t, missing.Validate())
}
