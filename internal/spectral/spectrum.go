// Package spectral provides FFT-based magnitude inspection of rendered
// signals. It is the verification oracle for the antialiasing wavetables and
// the filters: tests and the analyze-wavetable command use it to measure
// energy distribution and to detect alias components below a fundamental.
package spectral

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-synth/internal/simdops"
)

// amplitudeScale converts a one-sided FFT magnitude into a sine amplitude.
const amplitudeScale = 2.0

// Spectrum is the one-sided magnitude spectrum of a real signal.
type Spectrum struct {
	magnitudes []float64
	binWidth   float64
	sampleRate float64
}

// Option configures Analyze.
type Option func(*config)

type config struct {
	window func(n int) []float64
}

// WithHannWindow applies a Hann window before the transform. Use it when
// neighbouring peaks must be resolved without rectangular-window leakage.
func WithHannWindow() Option {
	return func(c *config) { c.window = hann }
}

// WithKaiserWindow applies a Kaiser window with the given β.
func WithKaiserWindow(beta float64) Option {
	return func(c *config) {
		c.window = func(n int) []float64 { return kaiser(n, beta) }
	}
}

// Analyze computes the magnitude spectrum of signal sampled at sampleRate.
// Only the first len(signal)/2 bins are kept (up to Nyquist). Magnitudes are
// scaled so that a full-scale sine reads approximately 1.
func Analyze(signal []float32, sampleRate float64, opts ...Option) *Spectrum {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(signal)
	s := &Spectrum{sampleRate: sampleRate}
	if n < 2 || sampleRate <= 0 {
		return s
	}
	s.binWidth = sampleRate / float64(n)

	seq := make([]float64, n)
	for i, v := range signal {
		seq[i] = float64(v)
	}
	gain := float64(n)
	if cfg.window != nil {
		w := cfg.window(n)
		floats.Mul(seq, w)
		gain = floats.Sum(w)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	s.magnitudes = make([]float64, n/2)
	for k := range s.magnitudes {
		s.magnitudes[k] = amplitudeScale * cmplx.Abs(coeffs[k]) / gain
	}
	return s
}

// BinWidth returns the frequency spacing of adjacent bins in Hz.
func (s *Spectrum) BinWidth() float64 { return s.binWidth }

// Magnitudes returns the magnitude of every bin. The slice must not be modified.
func (s *Spectrum) Magnitudes() []float64 { return s.magnitudes }

// Magnitude returns the magnitude of the bin containing frequency.
// Frequencies outside the analysed range return 0.
func (s *Spectrum) Magnitude(frequency float64) float64 {
	i, ok := s.index(frequency)
	if !ok {
		return 0
	}
	return s.magnitudes[i]
}

// MeanMagnitude averages the bins from low (inclusive) to high (exclusive).
// The range is clipped to the analysed bins; an empty range returns 0.
func (s *Spectrum) MeanMagnitude(low, high float64) float64 {
	if s.binWidth == 0 {
		return 0
	}
	lo := max(int(low/s.binWidth), 0)
	hi := min(int(high/s.binWidth), len(s.magnitudes))
	if hi <= lo {
		return 0
	}
	return simdops.Float64Ops().Sum(s.magnitudes[lo:hi]) / float64(hi-lo)
}

// MaxMagnitude returns the largest bin magnitude.
func (s *Spectrum) MaxMagnitude() float64 {
	if len(s.magnitudes) == 0 {
		return 0
	}
	return floats.Max(s.magnitudes)
}

// LowestPeak returns the frequency of the lowest bin, DC excluded, whose
// magnitude exceeds threshold × the maximum magnitude. ok is false when no
// such bin exists.
func (s *Spectrum) LowestPeak(threshold float64) (frequency float64, ok bool) {
	return s.LowestPeakAbove(s.binWidth, threshold)
}

// LowestPeakAbove is LowestPeak restricted to bins at or above minFrequency,
// so that DC offsets and sub-audio drift can be discarded.
func (s *Spectrum) LowestPeakAbove(minFrequency, threshold float64) (frequency float64, ok bool) {
	if len(s.magnitudes) == 0 {
		return 0, false
	}
	start := max(int(math.Ceil(minFrequency/s.binWidth)), 0)
	if start >= len(s.magnitudes) {
		return 0, false
	}
	limit := threshold * floats.Max(s.magnitudes[start:])
	for i := start; i < len(s.magnitudes); i++ {
		if s.magnitudes[i] > limit {
			return float64(i) * s.binWidth, true
		}
	}
	return 0, false
}

func (s *Spectrum) index(frequency float64) (int, bool) {
	if s.binWidth == 0 || frequency < 0 {
		return 0, false
	}
	i := int(frequency / s.binWidth)
	if i >= len(s.magnitudes) {
		return 0, false
	}
	return i, true
}
