// Package wavetable implements band-limited wavetables.
//
// A Wavetable is built once from an oversampled single cycle. Construction
// low-passes the cycle at several cutoffs and decimates each result into a
// band of BaseLength samples. Reading picks the two bands whose frequency
// range brackets the playback frequency and cross-fades between them, so
// that harmonics above Nyquist are attenuated before they can alias.
//
// A Wavetable is immutable after New and may be shared by any number of
// oscillators without synchronization.
package wavetable

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tphakala/go-audio-synth/internal/filter"
	"github.com/tphakala/go-audio-synth/internal/mathutil"
	"github.com/tphakala/go-audio-synth/internal/simdops"
	"github.com/tphakala/go-audio-synth/internal/waveshape"
)

// Errors returned by New.
var (
	// ErrInvalidSource indicates a source cycle of the wrong length.
	ErrInvalidSource = errors.New("invalid wavetable source")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("invalid wavetable sample rate")
)

// Wavetable holds the precomputed bands of one waveform.
// Band 0 is a sine, band 6 the least filtered copy of the source.
type Wavetable struct {
	sampleRate float32
	nyquist    float32
	bands      [bandCount][]float32
}

// New builds a wavetable for playback at sampleRate from one oversampled
// cycle of exactly SourceLength samples. The source is not modified.
func New(source []float32, sampleRate float64) (*Wavetable, error) {
	if len(source) != SourceLength {
		return nil, fmt.Errorf("%w: need %d samples, got %d", ErrInvalidSource, SourceLength, len(source))
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	w := &Wavetable{
		sampleRate: float32(sampleRate),
		nyquist:    float32(sampleRate / 2),
	}
	w.bands[0] = waveshape.Sine(BaseLength)
	for i, cutoff := range bandCutoffs {
		w.bands[i+1] = buildBand(source, cutoff)
	}
	return w, nil
}

// Saw builds a sawtooth wavetable with as many harmonics as a band can hold.
func Saw(sampleRate float64) (*Wavetable, error) {
	return New(waveshape.Saw(SourceLength, BaseLength/2), sampleRate)
}

// Square builds a square-wave wavetable.
func Square(sampleRate float64) (*Wavetable, error) {
	return New(waveshape.Square(SourceLength, BaseLength/2), sampleRate)
}

// Triangle builds a triangle-wave wavetable.
func Triangle(sampleRate float64) (*Wavetable, error) {
	return New(waveshape.Triangle(SourceLength, BaseLength/2), sampleRate)
}

// Sine builds a sine wavetable.
func Sine(sampleRate float64) (*Wavetable, error) {
	return New(waveshape.Sine(SourceLength), sampleRate)
}

// FromCycle builds a wavetable from a single cycle of any length, for example
// one loaded from a file. The cycle is resampled to SourceLength first.
func FromCycle(cycle []float32, sampleRate float64) (*Wavetable, error) {
	if len(cycle) < 2 {
		return nil, fmt.Errorf("%w: cycle needs at least 2 samples, got %d", ErrInvalidSource, len(cycle))
	}
	return New(waveshape.FromSamples(cycle, SourceLength), sampleRate)
}

// SampleRate returns the playback sample rate the wavetable was built for.
func (w *Wavetable) SampleRate() float64 { return float64(w.sampleRate) }

// Bands returns the number of bands.
func (w *Wavetable) Bands() int { return bandCount }

// Band returns band i. The slice is shared and must not be modified.
func (w *Wavetable) Band(i int) []float32 { return w.bands[i] }

// Read returns the waveform value at phase in [0, 1) for a voice playing at
// frequency Hz. Phases outside the range are wrapped.
func (w *Wavetable) Read(phase, frequency float32) float32 {
	if phase < 0 || phase >= 1 {
		phase = mathutil.Wrap(phase, 1)
	}
	position := phase * BaseLength
	index := int(position)
	frac := position - float32(index)
	if index >= BaseLength {
		index = BaseLength - 1
	}

	a, b, mix := selectBands(abs(frequency) / w.nyquist)
	va := interpolate(w.bands[a], index, frac)
	if a == b {
		return va
	}
	vb := interpolate(w.bands[b], index, frac)
	return mathutil.LinearCrossfade(va, vb, mix)
}

// selectBands maps a frequency/Nyquist ratio to the pair of bands to blend
// and the blend amount. Ratios below the first threshold use the full band,
// ratios at or above the last use the sine band. NaN selects the sine band.
func selectBands(relative float32) (a, b int, mix float32) {
	if relative < thresholds[0] {
		return fullBand, fullBand, 0
	}
	for j := 0; j < len(thresholds)-1; j++ {
		low, high := thresholds[j], thresholds[j+1]
		if relative < high {
			return fullBand - j, fullBand - j - 1, (relative - low) / (high - low)
		}
	}
	return 0, 0, 0
}

func interpolate(band []float32, index int, frac float32) float32 {
	next := index + 1
	if next == len(band) {
		next = 0
	}
	return band[index] + (band[next]-band[index])*frac
}

// buildBand low-passes the source FilterPasses times, decimates it and
// normalizes the result. Every pass runs forward and then backward over the
// steady-state cycle, so bands carry no phase shift relative to each other
// and to the sine band.
func buildBand(source []float32, cutoff float64) []float32 {
	cycle := make([]float32, len(source))
	simdops.Float32Ops().Scale(cycle, source, sourceHeadroom)

	scratch := make([]float32, len(cycle))
	for range FilterPasses {
		steadyState(cycle, scratch, cutoff)
		slices.Reverse(cycle)
		steadyState(cycle, scratch, cutoff)
		slices.Reverse(cycle)
	}

	band := make([]float32, BaseLength)
	for i := range band {
		band[i] = cycle[i*Oversampling]
	}
	waveshape.Normalize(band)
	return band
}

// steadyState filters the periodic signal cycle in place, after priming the
// filter with warmupCycles repetitions. The cycle length is the filter's
// sample rate, so cutoff is measured in harmonics.
func steadyState(cycle, scratch []float32, cutoff float64) {
	svf := filter.NewStateVariable(float64(len(cycle)))
	svf.SetFrequency(cutoff)
	for range warmupCycles {
		copy(scratch, cycle)
		svf.Process(scratch)
	}
	svf.Process(cycle)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
