package durations

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	samples := []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

	mean, ok := Mean(samples)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, mean)
}

func TestMeanEmpty(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok)

	_, ok = Mean([]time.Duration{})
	assert.False(t, ok)
}

func TestStdDev(t *testing.T) {
	samples := []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

	sd, ok := StdDev(samples)
	require.True(t, ok)
	// Population std dev of [1s,3s,5s] is sqrt(8/3) ~ 1.633s.
	assert.InDelta(t, 1.633, sd.Seconds(), 0.01)
}

func TestStdDevEmpty(t *testing.T) {
	_, ok := StdDev(nil)
	assert.False(t, ok)
}

func TestStdDevSingleSample(t *testing.T) {
	sd, ok := StdDev([]time.Duration{42 * time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), sd)
}

func TestErrorWithConfidence(t *testing.T) {
	samples := []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

	ciErr, ok := ErrorWithConfidence(samples)
	require.True(t, ok)

	sd, ok := StdDev(samples)
	require.True(t, ok)
	expected := 1.96 * sd.Seconds() / math.Sqrt(float64(len(samples)))
	assert.InDelta(t, expected, ciErr.Seconds(), 1e-9)
}

func TestErrorWithConfidenceEmpty(t *testing.T) {
	_, ok := ErrorWithConfidence(nil)
	assert.False(t, ok)
}

func TestErrorWithConfidenceSingleSample(t *testing.T) {
	// A lone sample has zero spread, so the bound is defined and zero
	// even though n is far below the CI validity threshold.
	ciErr, ok := ErrorWithConfidence([]time.Duration{7 * time.Second})
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), ciErr)
}
