package oscillator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-synth/internal/mathutil"
	"github.com/tphakala/go-audio-synth/internal/spectral"
	"github.com/tphakala/go-audio-synth/internal/testutil"
)

func TestOsc1_SetVoicesClamps(t *testing.T) {
	o := NewOsc1(sawTable(t), testSampleRate)
	assert.Equal(t, 1, o.Voices())

	o.SetVoices(0)
	assert.Equal(t, 1, o.Voices())
	o.SetVoices(12)
	assert.Equal(t, MaxVoices, o.Voices())
	o.SetVoices(4)
	assert.Equal(t, 4, o.Voices())
}

func TestOsc1_VoiceFrequencies(t *testing.T) {
	o := NewOsc1(sawTable(t), testSampleRate)
	o.SetFrequency(440)
	o.SetVoices(5)
	o.SetDetune(1)

	detunes := []float32{0, 0.5, -0.5, -1, 1}
	got := o.VoiceFrequencies()
	for i, d := range detunes {
		assert.InDelta(t, mathutil.Detune(440, d), got[i], 1e-3, "voice %d", i)
	}
	// Disabled voices are not detuned.
	assert.InDelta(t, 440, got[5], 1e-3)
	assert.InDelta(t, 440, got[6], 1e-3)
}

func TestOsc1_MeanOfVoices(t *testing.T) {
	table := sawTable(t)
	single := NewOsc1(table, testSampleRate)
	stacked := NewOsc1(table, testSampleRate)
	stacked.SetVoices(MaxVoices)

	want := make([]float32, 256)
	got := make([]float32, 256)
	single.Populate(want)
	stacked.Populate(got)
	assert.InDeltaSlice(t, want, got, 1e-5)
}

func TestOsc1_DisabledVoicesKeepPhase(t *testing.T) {
	o := NewOsc1(sawTable(t), testSampleRate)
	o.SetFrequency(330)

	buf := make([]float32, 777)
	o.Populate(buf)
	for i := 1; i < MaxVoices; i++ {
		assert.InDelta(t, o.voices[0].Phase(), o.voices[i].Phase(), 1e-6, "voice %d", i)
	}
}

func TestOsc1_PhaseResetIdempotent(t *testing.T) {
	o := NewOsc1(sawTable(t), testSampleRate)
	o.SetVoices(6)
	o.SetDetune(0.7)
	o.SetFrequency(220)

	first := make([]float32, 2048)
	o.Populate(first)
	o.Reset()
	second := make([]float32, 2048)
	o.Populate(second)
	assert.Equal(t, first, second)
}

func TestOsc1_NoAliasing(t *testing.T) {
	const (
		seconds   = 4
		threshold = 0.1
		minHz     = 10
	)

	table := sawTable(t)
	frequencies := []float32{100, 440, 1000, 2500, 5000, 9000, 15000}
	detunes := []float32{1, 2}

	for _, freq := range frequencies {
		for _, detune := range detunes {
			t.Run(fmt.Sprintf("%vHz_detune_%v", freq, detune), func(t *testing.T) {
				o := NewOsc1(table, testSampleRate)
				o.SetVoices(MaxVoices)
				o.SetDetune(detune)
				o.SetFrequency(freq)

				signal := make([]float32, seconds*testSampleRate)
				for i := 0; i < len(signal); i += 32 {
					o.Populate(signal[i:min(i+32, len(signal))])
				}
				testutil.AssertNoNaNOrInf(t, signal)

				spectrum := spectral.Analyze(signal, testSampleRate, spectral.WithHannWindow())
				lowest, ok := spectrum.LowestPeakAbove(minHz, threshold)
				require.True(t, ok)

				floor := float64(mathutil.Detune(freq, -detune)) - 1
				assert.GreaterOrEqual(t, lowest, floor, "energy below the lowest voice")
			})
		}
	}
}

func BenchmarkOsc1_Populate(b *testing.B) {
	o := NewOsc1(sawTable(b), testSampleRate)
	o.SetVoices(MaxVoices)
	o.SetDetune(0.3)
	buf := make([]float32, 32)
	for b.Loop() {
		o.Populate(buf)
	}
}
