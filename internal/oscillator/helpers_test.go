package oscillator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

const testSampleRate = 44100.0

func sawTable(tb testing.TB) *wavetable.Wavetable {
	tb.Helper()
	w, err := wavetable.Saw(testSampleRate)
	require.NoError(tb, err)
	return w
}

func sineTable(tb testing.TB) *wavetable.Wavetable {
	tb.Helper()
	w, err := wavetable.Sine(testSampleRate)
	require.NoError(tb, err)
	return w
}

func squareTable(tb testing.TB) *wavetable.Wavetable {
	tb.Helper()
	w, err := wavetable.Square(testSampleRate)
	require.NoError(tb, err)
	return w
}
