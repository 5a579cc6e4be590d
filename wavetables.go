package synth

import (
	"github.com/tphakala/go-audio-synth/internal/mathutil"
	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

// SourceLength is the length of the oversampled cycle NewWavetable expects.
const SourceLength = wavetable.SourceLength

// NewWavetable builds a wavetable at the engine's rate from one cycle of
// any length of at least two samples.
func (e *Engine) NewWavetable(cycle []float32) (*Wavetable, error) {
	if len(cycle) == SourceLength {
		return wavetable.New(cycle, e.config.SampleRate)
	}
	return wavetable.FromCycle(cycle, e.config.SampleRate)
}

// NewSaw builds a sawtooth wavetable at the engine's rate.
func (e *Engine) NewSaw() (*Wavetable, error) { return wavetable.Saw(e.config.SampleRate) }

// NewSine builds a sine wavetable at the engine's rate.
func (e *Engine) NewSine() (*Wavetable, error) { return wavetable.Sine(e.config.SampleRate) }

// NewSquare builds a square-wave wavetable at the engine's rate.
func (e *Engine) NewSquare() (*Wavetable, error) { return wavetable.Square(e.config.SampleRate) }

// NewTriangle builds a triangle-wave wavetable at the engine's rate.
func (e *Engine) NewTriangle() (*Wavetable, error) { return wavetable.Triangle(e.config.SampleRate) }

// NoteFrequency converts a MIDI note number to Hz, with note 69 at 440 Hz.
func NoteFrequency(note float64) float32 {
	return float32(mathutil.NoteToFrequency(note))
}
