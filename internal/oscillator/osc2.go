package oscillator

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-synth/internal/mathutil"
	"github.com/tphakala/go-audio-synth/internal/simdops"
	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

// Osc2 renders MorphVoices stereo voices over a circular bank of
// wavetables. Detune, pan, breadth and table position are spread across the
// voices around the centre one.
type Osc2 struct {
	bank       []*wavetable.Wavetable
	sampleRate float32
	ops        *simdops.Ops[float32]

	frequency float32
	detune    float32
	pan       float32
	breadth   float32
	position  float32
	spread    float32

	amplitudes [MorphVoices]float32
	normalizer float32
	voices     [MorphVoices]morphVoice
}

type morphVoice struct {
	phasor
	frequency float32
	gain      float32

	// Adjacent bank entries and the blend between them.
	table, next int
	morph       float32

	left, right float32
}

// NewOsc2 creates a morphing oscillator over bank at 440 Hz with no detune,
// centred pan, zero breadth, and every voice on table 0.
func NewOsc2(bank []*wavetable.Wavetable, sampleRate float64) *Osc2 {
	if len(bank) == 0 {
		panic("oscillator: empty wavetable bank")
	}
	for i, t := range bank {
		if t == nil {
			panic(fmt.Sprintf("oscillator: nil wavetable at bank index %d", i))
		}
	}
	if !(sampleRate > 0) {
		panic(fmt.Sprintf("oscillator: sample rate must be positive, got %v", sampleRate))
	}
	o := &Osc2{
		bank:       append([]*wavetable.Wavetable(nil), bank...),
		sampleRate: float32(sampleRate),
		ops:        simdops.Float32Ops(),
		frequency:  440,
	}
	o.SetBreadth(0)
	o.SetPan(0)
	o.SetWavetable(0)
	o.retune()
	return o
}

// SetFrequency sets the centre frequency in Hz.
func (o *Osc2) SetFrequency(frequency float32) {
	o.frequency = frequency
	o.retune()
}

// Frequency returns the centre frequency.
func (o *Osc2) Frequency() float32 { return o.frequency }

// SetDetune sets the detune of the outer voices in semitones. Voice i plays
// detune·(i-2)/2 semitones from the centre.
func (o *Osc2) SetDetune(semitones float32) {
	o.detune = semitones
	o.retune()
}

// SetPan sets the stereo width in [-1, 1]. Voice i sits at width·(i-2)/2;
// a negative width mirrors the voices.
func (o *Osc2) SetPan(width float32) {
	checkUnitRange("pan width", width)
	o.pan = width
	for i := range o.voices {
		left, right := equalPowerPan(width * voiceOffset(i) / 2)
		o.voices[i].left, o.voices[i].right = left, right
	}
}

// SetBreadth sets how many voices are audible, in [0, 1]. See BreadthTable.
func (o *Osc2) SetBreadth(breadth float32) {
	o.amplitudes = Breadth(breadth)
	o.breadth = breadth

	var total float32
	for _, a := range o.amplitudes {
		total += a
	}
	o.normalizer = 1 / max(1, float32(math.Sqrt(float64(total))))
	o.updateGains()
}

// SetWavetable moves the centre voice to bank position pos. Fractional
// positions blend adjacent tables and the position wraps around the bank.
func (o *Osc2) SetWavetable(position float32) {
	o.position = mathutil.Wrap(position, float32(len(o.bank)))
	o.placeVoices()
}

// SetWavetableSpread offsets voice i by spread·(i-2) bank positions.
// spread must be in [0, 1].
func (o *Osc2) SetWavetableSpread(spread float32) {
	if !(spread >= 0 && spread <= 1) {
		panic(fmt.Sprintf("oscillator: wavetable spread must be in [0, 1], got %v", spread))
	}
	o.spread = spread
	o.placeVoices()
}

// Amplitudes returns the breadth amplitude of every voice.
func (o *Osc2) Amplitudes() [MorphVoices]float32 { return o.amplitudes }

// Pan returns the left and right gain of voice i.
func (o *Osc2) Pan(i int) (left, right float32) {
	return o.voices[i].left, o.voices[i].right
}

// VoiceFrequencies returns the frequency of every voice.
func (o *Osc2) VoiceFrequencies() [MorphVoices]float32 {
	var out [MorphVoices]float32
	for i := range o.voices {
		out[i] = o.voices[i].frequency
	}
	return out
}

// Reset returns every voice to phase 0.
func (o *Osc2) Reset() {
	for i := range o.voices {
		o.voices[i].phase = 0
	}
}

// Populate overwrites left and right with the next len(left) frames.
// Both buffers must have the same length.
func (o *Osc2) Populate(left, right []float32) {
	if len(left) != len(right) {
		panic(fmt.Sprintf("oscillator: channel lengths differ: %d and %d", len(left), len(right)))
	}
	clear(left)
	clear(right)
	for i := range o.voices {
		v := &o.voices[i]
		if v.gain == 0 {
			for range left {
				v.advance()
			}
			continue
		}
		a, b := o.bank[v.table], o.bank[v.next]
		gl, gr := v.gain*v.left, v.gain*v.right
		for n := range left {
			s := a.Read(v.phase, v.frequency)
			if v.morph != 0 {
				s = mathutil.LinearCrossfade(s, b.Read(v.phase, v.frequency), v.morph)
			}
			left[n] += s * gl
			right[n] += s * gr
			v.advance()
		}
	}
	o.ops.Scale(left, left, o.normalizer)
	o.ops.Scale(right, right, o.normalizer)
}

func (o *Osc2) retune() {
	for i := range o.voices {
		v := &o.voices[i]
		v.frequency = mathutil.Detune(o.frequency, o.detune*voiceOffset(i)/2)
		v.setFrequency(v.frequency, o.sampleRate)
	}
	o.updateGains()
}

func (o *Osc2) updateGains() {
	for i := range o.voices {
		v := &o.voices[i]
		v.gain = o.amplitudes[i] * LowFrequencyFade(v.frequency)
	}
}

func (o *Osc2) placeVoices() {
	n := float32(len(o.bank))
	for i := range o.voices {
		v := &o.voices[i]
		p := mathutil.Wrap(o.position+o.spread*voiceOffset(i), n)
		v.table = int(p)
		if v.table >= len(o.bank) {
			v.table = len(o.bank) - 1
		}
		v.morph = p - float32(v.table)
		v.next = (v.table + 1) % len(o.bank)
	}
}

// voiceOffset is the signed distance of voice i from the centre voice.
func voiceOffset(i int) float32 {
	return float32(i - morphCentre)
}

// equalPowerPan maps a position in [-1, 1] to left and right gains whose
// squares sum to one.
func equalPowerPan(position float32) (left, right float32) {
	angle := float64(position+1) * math.Pi / 4
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
