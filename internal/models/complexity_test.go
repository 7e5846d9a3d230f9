package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexityClassLabels(t *testing.T) {
	labels := map[ComplexityClass]string{
		ClassUnknown:      "O(?)",
		ClassConstant:     "O(1)",
		ClassLogarithmic:  "O(log n)",
		ClassLinear:       "O(n)",
		ClassLinearithmic: "O(n log n)",
		ClassQuadratic:    "O(n^2)",
		ClassCubic:        "O(n^3)",
		ClassExponential:  "O(2^n)",
		ClassFactorial:    "O(n!)",
	}
	for class, want := range labels {
		assert.Equal(t, want, class.String())
	}
}

func TestComplexityClassTotalOrder(t *testing.T) {
	ordered := []ComplexityClass{
		ClassUnknown, ClassConstant, ClassLogarithmic, ClassLinear,
		ClassLinearithmic, ClassQuadratic, ClassCubic, ClassExponential, ClassFactorial,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i], ordered[i-1])
	}
}

func TestAddTagDeduplicates(t *testing.T) {
	ar := NewAnalysisResult()
	ar.AddTag("sort")
	ar.AddTag("recursion")
	ar.AddTag("sort")
	assert.Equal(t, []string{"sort", "recursion"}, ar.Tags)
}

func TestPrependWhy(t *testing.T) {
	ar := NewAnalysisResult()
	ar.AddWhy("first")
	ar.PrependWhy("before everything")
	assert.Equal(t, []string{"before everything", "first"}, ar.Why)
}

func TestAnalysisResultJSONShape(t *testing.T) {
	ar := NewAnalysisResult()
	ar.Loops = LoopStats{Count: 2, MaxDepth: 2}
	ar.AddTag("sort")
	ar.Time = TimeEstimate{BigO: "O(n^2)", Confidence: 0.8}
	ar.AddWhy("nested loops")

	data, err := json.Marshal(ar)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "loops")
	assert.Contains(t, decoded, "tags")
	assert.Contains(t, decoded, "time")
	assert.Contains(t, decoded, "why")

	loops := decoded["loops"].(map[string]interface{})
	assert.Equal(t, float64(2), loops["maxDepth"])
	tm := decoded["time"].(map[string]interface{})
	assert.Equal(t, "O(n^2)", tm["bigO"])
}

func TestEmptyResultMarshalsEmptyArrays(t *testing.T) {
	data, err := json.Marshal(NewAnalysisResult())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
	assert.Contains(t, string(data), `"why":[]`)
}
