package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearCrossfade_Endpoints(t *testing.T) {
	assert.InDelta(t, 3.0, LinearCrossfade(3, 7, 0), 0)
	assert.InDelta(t, 7.0, LinearCrossfade(3, 7, 1), 0)
	assert.InDelta(t, 5.0, LinearCrossfade(3, 7, 0.5), 1e-6)
}

func TestLogCrossfade_Endpoints(t *testing.T) {
	assert.InDelta(t, 100.0, LogCrossfade(100, 400, 0), 0)
	assert.InDelta(t, 400.0, LogCrossfade(100, 400, 1), 0)
	// Geometric midpoint.
	assert.InDelta(t, 200.0, LogCrossfade(100, 400, 0.5), 1e-3)
}

func TestLogCrossfade_EqualValues(t *testing.T) {
	// Equal values short-circuit even when the logarithm is undefined.
	assert.InDelta(t, 0.0, LogCrossfade(0, 0, 0.3), 0)
	assert.InDelta(t, -2.0, LogCrossfade(-2, -2, 0.7), 0)
}

func TestCrossfade_RejectsOutOfRangeMix(t *testing.T) {
	for _, x := range []float32{-0.01, 1.01, float32(math.NaN())} {
		assert.Panics(t, func() { LinearCrossfade(0, 1, x) }, "linear x=%v", x)
		assert.Panics(t, func() { LogCrossfade(1, 2, x) }, "log x=%v", x)
	}
}

func TestLogCrossfade_RejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { LogCrossfade(0, 1, 0.5) })
	assert.Panics(t, func() { LogCrossfade(1, -1, 0.5) })
}
