package oscillator

import (
	"fmt"

	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

// FillMode selects how Populate treats the destination buffer.
type FillMode int

const (
	// Overwrite replaces the buffer contents.
	Overwrite FillMode = iota

	// Add mixes into the existing contents.
	Add

	// Dry advances the phase without touching the buffer, which keeps a
	// disabled voice in step with the others.
	Dry
)

// String returns the mode name.
func (m FillMode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case Add:
		return "add"
	case Dry:
		return "dry"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// Circular plays one wavetable at a given frequency and amplitude.
type Circular struct {
	table      *wavetable.Wavetable
	sampleRate float32
	frequency  float32
	amplitude  float32
	gain       float32
	phasor
}

// NewCircular creates an oscillator reading table at sampleRate.
// It starts at phase 0, 440 Hz and unit amplitude.
func NewCircular(table *wavetable.Wavetable, sampleRate float64) *Circular {
	if table == nil {
		panic("oscillator: nil wavetable")
	}
	if !(sampleRate > 0) {
		panic(fmt.Sprintf("oscillator: sample rate must be positive, got %v", sampleRate))
	}
	c := &Circular{
		table:      table,
		sampleRate: float32(sampleRate),
		amplitude:  1,
	}
	c.SetFrequency(440)
	return c
}

// SetFrequency sets the playback frequency in Hz. Negative values play the
// table backwards.
func (c *Circular) SetFrequency(frequency float32) {
	c.frequency = frequency
	c.setFrequency(frequency, c.sampleRate)
	c.gain = c.amplitude * LowFrequencyFade(frequency)
}

// Frequency returns the playback frequency.
func (c *Circular) Frequency() float32 { return c.frequency }

// SetAmplitude sets the output gain.
func (c *Circular) SetAmplitude(amplitude float32) {
	c.amplitude = amplitude
	c.gain = amplitude * LowFrequencyFade(c.frequency)
}

// Amplitude returns the output gain.
func (c *Circular) Amplitude() float32 { return c.amplitude }

// SetPhase moves the oscillator to phase, wrapped into [0, 1).
func (c *Circular) SetPhase(phase float32) { c.set(phase) }

// Phase returns the current phase.
func (c *Circular) Phase() float32 { return c.phase }

// Reset returns the phase to 0.
func (c *Circular) Reset() { c.phase = 0 }

// Populate renders len(buf) samples according to mode.
func (c *Circular) Populate(buf []float32, mode FillMode) {
	switch mode {
	case Overwrite:
		for i := range buf {
			buf[i] = c.table.Read(c.phase, c.frequency) * c.gain
			c.advance()
		}
	case Add:
		for i := range buf {
			buf[i] += c.table.Read(c.phase, c.frequency) * c.gain
			c.advance()
		}
	default:
		for range buf {
			c.advance()
		}
	}
}
