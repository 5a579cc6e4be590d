package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-synth/internal/spectral"
	"github.com/tphakala/go-audio-synth/internal/testutil"
)

const (
	separationRate   = 1200.0
	separationCutoff = 100.0
	separationQ      = defaultQFactor
	noiseSamples     = 12000
	minSeparation    = 3.0
)

func filteredNoise(mode Mode) *spectral.Spectrum {
	f := NewStateVariable(separationRate)
	f.SetMode(mode)
	f.SetFrequency(separationCutoff)
	f.SetQFactor(separationQ)

	signal := testutil.WhiteNoise(noiseSamples, 12345, 0.5)
	f.Process(signal)
	return spectral.Analyze(signal, separationRate)
}

func TestStateVariable_LowPassSeparation(t *testing.T) {
	s := filteredNoise(LowPass)
	below := s.MeanMagnitude(0, separationCutoff)
	above := s.MeanMagnitude(separationCutoff, separationRate/2)
	require.Greater(t, above, 0.0)
	assert.Greater(t, below/above, minSeparation, "below=%f above=%f", below, above)
}

func TestStateVariable_HighPassSeparation(t *testing.T) {
	s := filteredNoise(HighPass)
	below := s.MeanMagnitude(0, separationCutoff)
	above := s.MeanMagnitude(separationCutoff, separationRate/2)
	require.Greater(t, below, 0.0)
	assert.Greater(t, above/below, minSeparation, "below=%f above=%f", below, above)
}

func TestStateVariable_BandModes(t *testing.T) {
	const rate = 48000.0
	const centre = 1000.0

	gainAt := func(mode Mode, freq float64) float64 {
		f := NewStateVariable(rate)
		f.SetMode(mode)
		f.SetFrequency(centre)
		f.SetQFactor(2)
		signal := make([]float32, 48000)
		for i := range signal {
			signal[i] = float32(0.25 * math.Sin(2*math.Pi*freq*float64(i)/rate))
		}
		f.Process(signal)
		// Skip the transient.
		return spectral.RMS(signal[24000:]) / (0.25 / math.Sqrt2)
	}

	assert.Greater(t, gainAt(BandPass, centre), 0.9)
	assert.Less(t, gainAt(BandPass, 8*centre), 0.2)
	assert.Less(t, gainAt(BandReject, centre), 0.1)
	assert.Greater(t, gainAt(BandReject, 8*centre), 0.9)
}

func TestStateVariable_OutputClamped(t *testing.T) {
	f := NewStateVariable(48000)
	f.SetMode(BandPass)
	f.SetFrequency(2000)
	f.SetQFactor(50)

	signal := make([]float32, 4800)
	for i := range signal {
		signal[i] = float32(math.Sin(2 * math.Pi * 2000 * float64(i) / 48000))
	}
	f.Process(signal)
	testutil.AssertAllInRange(t, signal, -1, 1)
	testutil.AssertNoNaNOrInf(t, signal)
}

func TestStateVariable_Setters(t *testing.T) {
	f := NewStateVariable(48000)
	assert.Equal(t, LowPass, f.Mode())
	assert.InDelta(t, 1000.0, f.Frequency(), 0)
	assert.InDelta(t, defaultQFactor, f.QFactor(), 0)

	f.SetFrequency(250)
	assert.InDelta(t, 250.0, f.Frequency(), 0)
	assert.InDelta(t, 2*math.Sin(math.Pi*250/48000), f.f, 1e-7)

	f.SetQFactor(4)
	assert.InDelta(t, 0.25, f.q, 1e-7)

	assert.Panics(t, func() { f.SetQFactor(0) })
	assert.Panics(t, func() { f.SetQFactor(-1) })
	assert.Panics(t, func() { f.SetFrequency(-1) })
	assert.Panics(t, func() { f.SetFrequency(math.NaN()) })
	assert.Panics(t, func() { f.SetMode(Mode(9)) })
	assert.Panics(t, func() { NewStateVariable(0) })
}

func TestStateVariable_StableUpToMaxFrequency(t *testing.T) {
	const rate = 44100.0
	impulse := make([]float32, 4096)
	impulse[0] = 0.1
	noise := testutil.WhiteNoise(4096, 99, 0.9)

	for _, q := range []float64{0.5, defaultQFactor, 2, 20} {
		for _, mode := range []Mode{LowPass, HighPass, BandPass, BandReject} {
			for step := 1; step <= 8; step++ {
				cutoff := MaxFrequency(rate) * float64(step) / 8
				for _, input := range [][]float32{impulse, noise} {
					f := NewStateVariable(rate)
					f.SetMode(mode)
					f.SetQFactor(q)
					f.SetFrequency(cutoff)
					signal := append([]float32(nil), input...)
					f.Process(signal)
					if !testutil.AssertNoNaNOrInf(t, signal) {
						t.Fatalf("diverged: mode=%v q=%v cutoff=%.0f", mode, q, cutoff)
					}
					assert.False(t, math.IsNaN(float64(f.delay1)), "mode=%v q=%v cutoff=%.0f", mode, q, cutoff)
				}
			}
		}
	}
}

func TestStateVariable_CoefficientCapped(t *testing.T) {
	const rate = 44100.0
	f := NewStateVariable(rate)
	f.SetFrequency(rate / 2)
	assert.InDelta(t, rate/2, f.Frequency(), 0, "requested frequency is kept")
	q := 1 / defaultQFactor
	assert.InDelta(t, stabilityMargin*(math.Sqrt(q*q+4)-q), f.f, 1e-6)

	impulse := make([]float32, 8192)
	impulse[0] = 0.1
	f.Process(impulse)
	testutil.AssertNoNaNOrInf(t, impulse)
	assert.Less(t, math.Abs(float64(f.delay1)), 1.0, "state decays")

	// Lowering Q shrinks the stable range; the coefficient follows.
	f.SetQFactor(0.25)
	assert.InDelta(t, stabilityMargin*(math.Sqrt(20)-4), f.f, 1e-6)
}

func TestMaxFrequency(t *testing.T) {
	assert.InDelta(t, 8000.0, MaxFrequency(48000), 1e-9)
	assert.InDelta(t, 7350.0, MaxFrequency(44100), 1e-9)
}

func TestStateVariable_Reset(t *testing.T) {
	f := NewStateVariable(48000)
	noise := testutil.WhiteNoise(256, 7, 0.5)

	first := append([]float32(nil), noise...)
	f.Process(first)
	f.Reset()
	second := append([]float32(nil), noise...)
	f.Process(second)

	testutil.AssertSamplesEqual(t, first, second, 0)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "lowpass", LowPass.String())
	assert.Equal(t, "highpass", HighPass.String())
	assert.Equal(t, "bandpass", BandPass.String())
	assert.Equal(t, "bandreject", BandReject.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func BenchmarkStateVariable_Process(b *testing.B) {
	f := NewStateVariable(48000)
	buf := testutil.WhiteNoise(32, 1, 0.5)
	b.ReportAllocs()
	for b.Loop() {
		f.Process(buf)
	}
}
