package spectral

import (
	"math"

	"github.com/tphakala/go-audio-synth/internal/mathutil"
)

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}

// kaiser returns a Kaiser window of length n:
// w[i] = I₀(β·√(1 - ((i - α)/α)²)) / I₀(β), α = (n-1)/2.
func kaiser(n int, beta float64) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	alpha := float64(n-1) / 2
	norm := mathutil.BesselI0(beta)
	for i := range w {
		r := (float64(i) - alpha) / alpha
		w[i] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1-r*r))) / norm
	}
	return w
}
