// Package waveshape generates single-cycle waveforms used as wavetable sources.
//
// Every generator is a pure function of the table length and its shape
// parameters. Band-limited shapes are built by additive synthesis, so the
// requested harmonic count must stay below length/2 to avoid aliasing
// inside the table itself.
package waveshape

import (
	"math"

	"github.com/tphakala/go-audio-synth/internal/simdops"
)

// Pulse width limits. Widths outside the range are clamped.
const (
	MinPulseWidth = 0.01
	MaxPulseWidth = 0.99
)

// Sine returns one cycle of sin(2π·i/length).
func Sine(length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * float64(i) / float64(length)))
	}
	return out
}

// Saw returns a band-limited sawtooth made of the first harmonics partials,
// each with amplitude 1/k and alternating sign, peak-normalized to [-1, 1].
func Saw(length, harmonics int) []float32 {
	return additive(length, harmonics, func(k int) float64 {
		a := 1 / float64(k)
		if k%2 == 0 {
			return -a
		}
		return a
	})
}

// Square returns a band-limited square wave (odd harmonics, 1/k).
func Square(length, harmonics int) []float32 {
	return additive(length, harmonics, func(k int) float64 {
		if k%2 == 0 {
			return 0
		}
		return 1 / float64(k)
	})
}

// Triangle returns a band-limited triangle wave (odd harmonics, alternating sign, 1/k²).
func Triangle(length, harmonics int) []float32 {
	return additive(length, harmonics, func(k int) float64 {
		if k%2 == 0 {
			return 0
		}
		a := 1 / float64(k*k)
		if (k/2)%2 == 1 {
			return -a
		}
		return a
	})
}

// Pulse returns a band-limited pulse wave of the given duty cycle. width is
// clamped to [MinPulseWidth, MaxPulseWidth]; 0.5 yields a square wave.
// The DC component of asymmetric pulses is omitted.
func Pulse(length, harmonics int, width float64) []float32 {
	width = min(max(width, MinPulseWidth), MaxPulseWidth)
	out := make([]float64, length)
	for k := 1; k <= harmonics; k++ {
		a := math.Sin(math.Pi*float64(k)*width) / float64(k)
		if a == 0 {
			continue
		}
		for i := range out {
			t := float64(i)/float64(length) - width/2
			out[i] += a * math.Cos(2*math.Pi*float64(k)*t)
		}
	}
	return toFloat32(out)
}

// FromSamples resamples an arbitrary single cycle to length samples using
// linear interpolation, removes its DC offset and peak-normalizes it.
// An empty cycle yields silence.
func FromSamples(cycle []float32, length int) []float32 {
	out := make([]float32, length)
	n := len(cycle)
	if n == 0 {
		return out
	}

	var mean float64
	for _, v := range cycle {
		mean += float64(v)
	}
	mean /= float64(n)

	step := float64(n) / float64(length)
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		frac := pos - float64(idx)
		a := float64(cycle[idx%n])
		b := float64(cycle[(idx+1)%n])
		out[i] = float32(a + (b-a)*frac - mean)
	}
	Normalize(out)
	return out
}

// Normalize scales samples in place so that the largest magnitude is 1.
// Silent input is left unchanged.
func Normalize(samples []float32) {
	peak := simdops.Peak(samples)
	if peak == 0 {
		return
	}
	ops := simdops.Float32Ops()
	ops.Scale(samples, samples, 1/peak)
	// The reciprocal can round the peak a hair above 1.
	ops.Clamp(samples, samples, -1, 1)
}

// additive sums sin(2πk·i/length)·amplitude(k) for k in [1, harmonics] and normalizes.
// Partial k at index i reads the fundamental's sine table at (k·i) mod length.
func additive(length, harmonics int, amplitude func(k int) float64) []float32 {
	sine := make([]float64, length)
	for i := range sine {
		sine[i] = math.Sin(2 * math.Pi * float64(i) / float64(length))
	}
	out := make([]float64, length)
	for k := 1; k <= harmonics; k++ {
		a := amplitude(k)
		if a == 0 {
			continue
		}
		for i := range out {
			out[i] += a * sine[(k*i)%length]
		}
	}
	return toFloat32(out)
}

func toFloat32(samples []float64) []float32 {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = float32(v)
	}
	Normalize(out)
	return out
}
