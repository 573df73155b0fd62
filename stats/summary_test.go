package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s, err := Summarize(data)
	require.NoError(t, err)

	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, tolerance)
	assert.InDelta(t, 4.5, s.Median, tolerance)
	assert.InDelta(t, 2.0, s.Min, tolerance)
	assert.InDelta(t, 9.0, s.Max, tolerance)
	assert.InDelta(t, 7.0, s.Range, tolerance)
	assert.InDelta(t, 2.0, s.StdDev, tolerance)
	assert.InDelta(t, 4.0, s.Variance, tolerance)
	assert.InDelta(t, 2.138089935299395, s.SampleStdDev, tolerance)
	assert.InDelta(t, 32.0/7.0, s.SampleVariance, tolerance)

	// Summarize works on a copy.
	assert.Equal(t, []float64{2, 4, 4, 4, 5, 5, 7, 9}, data)
}

func TestSummarizeSingleValue(t *testing.T) {
	t.Parallel()

	s, err := Summarize([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 0.0, s.StdDev, tolerance)
	assert.True(t, math.IsNaN(s.SampleStdDev))
	assert.True(t, math.IsNaN(s.SampleVariance))
}
