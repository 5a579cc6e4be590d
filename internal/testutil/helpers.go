// Package testutil provides reusable test helpers for the synthesis packages.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// LCG constants, the same generator used for reproducible noise everywhere in tests.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7FFFFFFF
)

// WhiteNoise returns n samples of reproducible uniform noise in [-amplitude, amplitude].
func WhiteNoise(n int, seed uint32, amplitude float32) []float32 {
	out := make([]float32, n)
	state := seed
	for i := range out {
		state = state*lcgMultiplier + lcgIncrement
		v := float64(int32(state&lcgMask))/float64(lcgMask)*2.0 - 1.0
		out[i] = float32(v) * amplitude
	}
	return out
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float32, minVal, maxVal float32) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertSamplesEqual verifies two buffers match sample by sample within tolerance.
func AssertSamplesEqual(t *testing.T, expected, actual []float32, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance, "sample %d", i) {
			return false
		}
	}
	return true
}

// AssertNotSilent verifies that at least one sample exceeds the given magnitude.
func AssertNotSilent(t *testing.T, s []float32, magnitude float32) bool {
	t.Helper()
	for _, v := range s {
		if v > magnitude || v < -magnitude {
			return true
		}
	}
	return assert.Fail(t, "buffer is silent", "no sample exceeds %f", magnitude)
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
