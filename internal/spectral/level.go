package spectral

import (
	"math"

	"github.com/tphakala/go-audio-synth/internal/simdops"
)

// RMS returns the root-mean-square level of signal.
func RMS(signal []float32) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(float64(simdops.Energy(signal)) / float64(len(signal)))
}
