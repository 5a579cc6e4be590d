package oscillator

import (
	"github.com/tphakala/go-audio-synth/internal/mathutil"
	"github.com/tphakala/go-audio-synth/internal/simdops"
	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

// Osc1 is a unison oscillator of up to MaxVoices detuned voices over one
// wavetable. The output is the mean of the enabled voices.
type Osc1 struct {
	voices    [MaxVoices]*Circular
	detunes   [MaxVoices]float32
	enabled   int
	frequency float32
	detune    float32
	ops       *simdops.Ops[float32]
}

// NewOsc1 creates a single-voice oscillator at 440 Hz with no detune.
func NewOsc1(table *wavetable.Wavetable, sampleRate float64) *Osc1 {
	o := &Osc1{
		enabled:   1,
		frequency: 440,
		ops:       simdops.Float32Ops(),
	}
	for i := range o.voices {
		o.voices[i] = NewCircular(table, sampleRate)
	}
	o.update()
	return o
}

// SetFrequency sets the centre frequency in Hz.
func (o *Osc1) SetFrequency(frequency float32) {
	o.frequency = frequency
	o.retune()
}

// Frequency returns the centre frequency.
func (o *Osc1) Frequency() float32 { return o.frequency }

// SetDetune sets the spread between the outermost voices and the centre,
// in semitones.
func (o *Osc1) SetDetune(semitones float32) {
	o.detune = semitones
	o.update()
}

// Detune returns the detune amount in semitones.
func (o *Osc1) Detune() float32 { return o.detune }

// SetVoices sets the number of enabled voices. n is clamped to
// [1, MaxVoices].
func (o *Osc1) SetVoices(n int) {
	o.enabled = min(max(n, 1), MaxVoices)
	o.update()
}

// Voices returns the number of enabled voices.
func (o *Osc1) Voices() int { return o.enabled }

// VoiceFrequencies returns the frequency of every voice, enabled or not.
func (o *Osc1) VoiceFrequencies() [MaxVoices]float32 {
	var out [MaxVoices]float32
	for i, v := range o.voices {
		out[i] = v.Frequency()
	}
	return out
}

// Reset returns every voice to phase 0.
func (o *Osc1) Reset() {
	for _, v := range o.voices {
		v.Reset()
	}
}

// Populate overwrites buf with the next len(buf) samples. Disabled voices
// advance their phase without contributing.
func (o *Osc1) Populate(buf []float32) {
	o.voices[0].Populate(buf, Overwrite)
	for i := 1; i < MaxVoices; i++ {
		mode := Add
		if i >= o.enabled {
			mode = Dry
		}
		o.voices[i].Populate(buf, mode)
	}
	if o.enabled > 1 {
		o.ops.Scale(buf, buf, 1/float32(o.enabled))
	}
}

func (o *Osc1) update() {
	DistributeDetune(o.detunes[:], o.enabled, o.detune)
	o.retune()
}

func (o *Osc1) retune() {
	for i, v := range o.voices {
		v.SetFrequency(mathutil.Detune(o.frequency, o.detunes[i]))
	}
}
