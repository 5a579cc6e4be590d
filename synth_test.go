package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		wantErr bool
	}{
		{"cd", RateCD, false},
		{"dat", RateDAT, false},
		{"hires", RateHiRes96, false},
		{"lowest", minSampleRate, false},
		{"highest", maxSampleRate, false},
		{"zero", 0, true},
		{"negative", -48000, true},
		{"too low", 4000, true},
		{"too high", 768000, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{SampleRate: tt.rate}
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	_, err := NewEngine(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNoteFrequency(t *testing.T) {
	assert.InDelta(t, 440, NoteFrequency(69), 1e-4)
	assert.InDelta(t, 880, NoteFrequency(81), 1e-3)
	assert.InDelta(t, 261.6256, NoteFrequency(60), 1e-3)
}

func TestEngine_Wavetables(t *testing.T) {
	e := newTestEngine(t)

	for name, build := range map[string]func() (*Wavetable, error){
		"saw":      e.NewSaw,
		"sine":     e.NewSine,
		"square":   e.NewSquare,
		"triangle": e.NewTriangle,
	} {
		w, err := build()
		require.NoError(t, err, name)
		assert.InDelta(t, RateCD, w.SampleRate(), 0, name)
	}

	w, err := e.NewWavetable([]float32{1, 0.5, 0, -0.5, -1})
	require.NoError(t, err)
	assert.Equal(t, 7, w.Bands())

	w, err = e.NewWavetable(make([]float32, SourceLength))
	require.NoError(t, err)
	assert.NotNil(t, w)

	_, err = e.NewWavetable([]float32{1})
	require.ErrorIs(t, err, ErrInvalidSource)
}
