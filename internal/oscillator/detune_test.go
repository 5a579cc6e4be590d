package oscillator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeDetune(t *testing.T) {
	tests := []struct {
		name   string
		voices int
		detune float32
		want   []float32
	}{
		{"single voice", 1, 3, []float32{0}},
		{"two voices", 2, 1, []float32{1, -1}},
		{"three voices", 3, 2, []float32{0, 2, -2}},
		{"four voices", 4, 1, []float32{1.0 / 3, -1.0 / 3, -1, 1}},
		{"five voices", 5, 1, []float32{0, 0.5, -0.5, -1, 1}},
		{"six voices", 6, 1, []float32{0.2, -0.2, -0.6, 0.6, 1, -1}},
		{"seven voices", 7, 3, []float32{0, 1, -1, -2, 2, 3, -3}},
		{"zero detune", 5, 0, []float32{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, tt.voices)
			DistributeDetune(dst, tt.voices, tt.detune)
			assert.InDeltaSlice(t, tt.want, dst, 1e-6)
		})
	}
}

func TestDistributeDetune_Symmetric(t *testing.T) {
	for voices := 1; voices <= MaxVoices; voices++ {
		dst := make([]float32, voices)
		DistributeDetune(dst, voices, 1.5)

		var sum, lo, hi float32
		for _, d := range dst {
			sum += d
			lo = min(lo, d)
			hi = max(hi, d)
		}
		assert.InDelta(t, 0, sum, 1e-6, "voices %d", voices)
		if voices > 1 {
			assert.InDelta(t, -1.5, lo, 1e-6, "voices %d", voices)
			assert.InDelta(t, 1.5, hi, 1e-6, "voices %d", voices)
		}
	}
}

func TestDistributeDetune_ZeroesUnusedSlots(t *testing.T) {
	dst := []float32{9, 9, 9, 9, 9, 9, 9}
	DistributeDetune(dst, 3, 1)
	assert.Equal(t, []float32{0, 1, -1, 0, 0, 0, 0}, dst)
}

func TestDistributeDetune_Panics(t *testing.T) {
	assert.Panics(t, func() { DistributeDetune(make([]float32, 7), 0, 1) })
	assert.Panics(t, func() { DistributeDetune(make([]float32, 8), 8, 1) })
	assert.Panics(t, func() { DistributeDetune(make([]float32, 2), 3, 1) })
}
