package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionAtK_PartialRelevance(t *testing.T) {
	ranked := []string{"a", "b", "c"}
	relevant := map[string]bool{"a": true, "c": true}

	assert.InDelta(t, 2.0/3.0, PrecisionAtK(ranked, relevant, 3), 1e-9)
}

func TestPrecisionAtK_DividesByKNotListLength(t *testing.T) {
	ranked := []string{"a", "b", "c"}
	relevant := map[string]bool{"a": true, "b": true, "c": true}

	// Only 3 items exist but k=5: 3/5, not 3/3
	assert.InDelta(t, 0.6, PrecisionAtK(ranked, relevant, 5), 1e-9)
}

func TestPrecisionAtK_EdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, PrecisionAtK(nil, map[string]bool{"a": true}, 5))
	assert.Equal(t, 0.0, PrecisionAtK([]string{"a"}, map[string]bool{"a": true}, 0))
	assert.Equal(t, 0.0, PrecisionAtK([]string{"a", "b"}, map[string]bool{}, 2))
}

func TestNDCGAtK_PerfectRankingIsOne(t *testing.T) {
	ranked := []string{"best", "good", "weak"}
	relevance := map[string]float64{"best": 3, "good": 2, "weak": 1}

	assert.InDelta(t, 1.0, NDCGAtK(ranked, relevance, 3, GainLinear), 1e-9)
}

func TestNDCGAtK_WorstRankingIsBelowOne(t *testing.T) {
	relevance := map[string]float64{"best": 3, "good": 2, "weak": 0}

	worst := NDCGAtK([]string{"weak", "good", "best"}, relevance, 3, GainLinear)
	best := NDCGAtK([]string{"best", "good", "weak"}, relevance, 3, GainLinear)

	assert.Less(t, worst, best)
	assert.InDelta(t, 1.0, best, 1e-9)
}

func TestNDCGAtK_NoRelevantItemsIsZero(t *testing.T) {
	relevance := map[string]float64{"a": 0, "b": 0}

	assert.Equal(t, 0.0, NDCGAtK([]string{"a", "b"}, relevance, 2, GainLinear))
}

func TestNDCGAtK_EmptyInputsAreZero(t *testing.T) {
	assert.Equal(t, 0.0, NDCGAtK(nil, map[string]float64{"a": 1}, 5, GainLinear))
	assert.Equal(t, 0.0, NDCGAtK([]string{"a"}, map[string]float64{}, 5, GainLinear))
}

func TestDCGAtK_PositionDiscount(t *testing.T) {
	relevance := map[string]float64{"a": 1, "b": 1}

	dcg := DCGAtK([]string{"a", "b"}, relevance, 2, GainLinear)

	expected := 1.0/math.Log2(2) + 1.0/math.Log2(3)
	assert.InDelta(t, expected, dcg, 1e-9)
}

func TestGain_ExponentialForm(t *testing.T) {
	assert.InDelta(t, 3.0, GainExponential.Apply(2), 1e-9)
	assert.InDelta(t, 31.0, GainExponential.Apply(5), 1e-9)
	assert.InDelta(t, 2.0, GainLinear.Apply(2), 1e-9)
}

func TestMeanAndStd(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, Mean(values), 1e-9)
	assert.InDelta(t, 2.0, Std(values), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Std(nil))
}
