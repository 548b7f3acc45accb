// Package durations provides statistical reductions over duration samples.
//
// All functions are pure and treat the empty input as "no result" rather
// than zero, following the comma-ok idiom.
package durations

import (
	"math"
	"time"
)

// zScore95 is the two-sided critical value of the standard normal
// distribution for a 95% confidence interval.
const zScore95 = 1.96

// Mean returns the arithmetic mean of samples. The second return value is
// false when samples is empty.
func Mean(samples []time.Duration) (time.Duration, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	return sum / time.Duration(len(samples)), true
}

// StdDev returns the population standard deviation of samples.
//
// The variance is accumulated in floating-point seconds rather than on the
// integer Duration representation, so repeated squaring does not compound
// sub-second truncation; the result is converted back to a Duration at the
// end. A single-element input yields zero, an empty input yields false.
func StdDev(samples []time.Duration) (time.Duration, bool) {
	mean, ok := Mean(samples)
	if !ok {
		return 0, false
	}
	m := mean.Seconds()
	var acc float64
	for _, s := range samples {
		d := s.Seconds() - m
		acc += d * d
	}
	sd := math.Sqrt(acc / float64(len(samples)))
	return time.Duration(sd * float64(time.Second)), true
}

// ErrorWithConfidence returns the half-width of the 95% confidence
// interval around the mean of samples, z * stddev / sqrt(n).
//
// The normal approximation is only statistically meaningful for roughly
// n >= 30 samples. Smaller inputs still produce a value; callers should
// treat it as a low-confidence estimate.
func ErrorWithConfidence(samples []time.Duration) (time.Duration, bool) {
	sd, ok := StdDev(samples)
	if !ok {
		return 0, false
	}
	e := zScore95 * sd.Seconds() / math.Sqrt(float64(len(samples)))
	return time.Duration(e * float64(time.Second)), true
}
