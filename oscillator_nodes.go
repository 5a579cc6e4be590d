package synth

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-synth/internal/oscillator"
)

// MaxVoices is the largest unison voice count of an OscillatorNode.
const MaxVoices = oscillator.MaxVoices

// OscillatorNode is a unison wavetable oscillator with up to MaxVoices
// detuned voices. It has no inputs and one output, PortOut.
type OscillatorNode struct {
	osc *oscillator.Osc1
	out Buffer

	frequency *Param
	detune    *Param
	voices    *Param
}

// NewOscillatorNode creates a single-voice oscillator at 440 Hz playing
// table at the table's sample rate.
func NewOscillatorNode(table *Wavetable) *OscillatorNode {
	n := &OscillatorNode{
		osc:       oscillator.NewOsc1(table, table.SampleRate()),
		frequency: NewParam(defaultFrequency),
		detune:    NewParam(0),
		voices:    NewParam(1),
	}
	n.osc.SetFrequency(defaultFrequency)
	return n
}

// SetFrequency sets the centre frequency in Hz.
func (n *OscillatorNode) SetFrequency(hz float32) { n.frequency.Store(hz) }

// SetNote sets the centre frequency from a MIDI note number.
func (n *OscillatorNode) SetNote(note float64) { n.SetFrequency(NoteFrequency(note)) }

// SetDetune sets the spread of the outer voices in semitones.
func (n *OscillatorNode) SetDetune(semitones float32) { n.detune.Store(semitones) }

// SetVoices sets the enabled voice count, clamped to [1, MaxVoices].
func (n *OscillatorNode) SetVoices(voices int) {
	n.voices.Store(float32(min(max(voices, 1), MaxVoices)))
}

// Consumers implements Node.
func (n *OscillatorNode) Consumers() []Consumer { return nil }

// Producers implements Node.
func (n *OscillatorNode) Producers() []Producer { return generatorOutputs }

// Write implements Node. The oscillator has no inputs.
func (n *OscillatorNode) Write(Consumer, *Buffer) {}

// Read implements Node.
func (n *OscillatorNode) Read(Producer) *Buffer { return &n.out }

// Tick implements Node.
func (n *OscillatorNode) Tick() {
	if v, ok := n.voices.Poll(); ok {
		n.osc.SetVoices(int(v))
	}
	if v, ok := n.detune.Poll(); ok {
		n.osc.SetDetune(v)
	}
	if v, ok := n.frequency.Poll(); ok {
		n.osc.SetFrequency(v)
	}
	n.osc.Populate(n.out[:])
}

// MorphOscillatorNode is a five-voice stereo oscillator that morphs through
// a bank of wavetables. It has no inputs and two outputs, PortLeft and
// PortRight.
type MorphOscillatorNode struct {
	osc         *oscillator.Osc2
	left, right Buffer

	frequency *Param
	detune    *Param
	pan       *Param
	breadth   *Param
	position  *Param
	spread    *Param
}

// NewMorphOscillatorNode creates a morphing oscillator over bank at 440 Hz,
// playing at the sample rate of the first table.
func NewMorphOscillatorNode(bank []*Wavetable) *MorphOscillatorNode {
	if len(bank) == 0 {
		panic("synth: empty wavetable bank")
	}
	n := &MorphOscillatorNode{
		osc:       oscillator.NewOsc2(bank, bank[0].SampleRate()),
		frequency: NewParam(defaultFrequency),
		detune:    NewParam(0),
		pan:       NewParam(0),
		breadth:   NewParam(0),
		position:  NewParam(0),
		spread:    NewParam(0),
	}
	n.osc.SetFrequency(defaultFrequency)
	return n
}

// SetFrequency sets the centre frequency in Hz.
func (n *MorphOscillatorNode) SetFrequency(hz float32) { n.frequency.Store(hz) }

// SetNote sets the centre frequency from a MIDI note number.
func (n *MorphOscillatorNode) SetNote(note float64) { n.SetFrequency(NoteFrequency(note)) }

// SetDetune sets the detune of the outer voices in semitones.
func (n *MorphOscillatorNode) SetDetune(semitones float32) { n.detune.Store(semitones) }

// SetPan sets the stereo width. width must be in [-1, 1].
func (n *MorphOscillatorNode) SetPan(width float32) {
	checkRange("pan width", width, -1, 1)
	n.pan.Store(width)
}

// SetBreadth sets how many voices are audible. breadth must be in [0, 1].
func (n *MorphOscillatorNode) SetBreadth(breadth float32) {
	checkRange("breadth", breadth, 0, 1)
	n.breadth.Store(breadth)
}

// SetWavetable sets the bank position of the centre voice. Positions wrap
// around the bank.
func (n *MorphOscillatorNode) SetWavetable(position float32) {
	if math.IsNaN(float64(position)) || math.IsInf(float64(position), 0) {
		panic(fmt.Sprintf("synth: wavetable position must be finite, got %v", position))
	}
	n.position.Store(position)
}

// SetWavetableSpread sets the bank distance between adjacent voices.
// spread must be in [0, 1].
func (n *MorphOscillatorNode) SetWavetableSpread(spread float32) {
	checkRange("wavetable spread", spread, 0, 1)
	n.spread.Store(spread)
}

// Consumers implements Node.
func (n *MorphOscillatorNode) Consumers() []Consumer { return nil }

// Producers implements Node.
func (n *MorphOscillatorNode) Producers() []Producer { return stereoOutputs }

// Write implements Node. The oscillator has no inputs.
func (n *MorphOscillatorNode) Write(Consumer, *Buffer) {}

// Read implements Node.
func (n *MorphOscillatorNode) Read(p Producer) *Buffer {
	if p == PortRight {
		return &n.right
	}
	return &n.left
}

// Tick implements Node.
func (n *MorphOscillatorNode) Tick() {
	if v, ok := n.breadth.Poll(); ok {
		n.osc.SetBreadth(v)
	}
	if v, ok := n.pan.Poll(); ok {
		n.osc.SetPan(v)
	}
	if v, ok := n.spread.Poll(); ok {
		n.osc.SetWavetableSpread(v)
	}
	if v, ok := n.position.Poll(); ok {
		n.osc.SetWavetable(v)
	}
	if v, ok := n.detune.Poll(); ok {
		n.osc.SetDetune(v)
	}
	if v, ok := n.frequency.Poll(); ok {
		n.osc.SetFrequency(v)
	}
	n.osc.Populate(n.left[:], n.right[:])
}

// XYNode blends three wavetables on a triangle. It has no inputs and one
// output, PortOut.
type XYNode struct {
	osc *oscillator.XY0
	out Buffer

	frequency *Param
	x, y      *Param
}

// NewXYNode creates a blend oscillator at the origin, where only zero
// plays, at 440 Hz and the sample rate of zero.
func NewXYNode(zero, x, y *Wavetable) *XYNode {
	if zero == nil {
		panic("synth: nil wavetable")
	}
	n := &XYNode{
		osc:       oscillator.NewXY0(zero, x, y, zero.SampleRate()),
		frequency: NewParam(defaultFrequency),
		x:         NewParam(0),
		y:         NewParam(0),
	}
	n.osc.SetFrequency(defaultFrequency)
	return n
}

// SetFrequency sets the playback frequency in Hz.
func (n *XYNode) SetFrequency(hz float32) { n.frequency.Store(hz) }

// SetNote sets the frequency from a MIDI note number.
func (n *XYNode) SetNote(note float64) { n.SetFrequency(NoteFrequency(note)) }

// SetX moves the blend along the x axis. x must be in [-1, 1].
func (n *XYNode) SetX(x float32) {
	checkRange("x", x, -1, 1)
	n.x.Store(x)
}

// SetY moves the blend along the y axis. y must be in [-1, 1].
func (n *XYNode) SetY(y float32) {
	checkRange("y", y, -1, 1)
	n.y.Store(y)
}

// Consumers implements Node.
func (n *XYNode) Consumers() []Consumer { return nil }

// Producers implements Node.
func (n *XYNode) Producers() []Producer { return generatorOutputs }

// Write implements Node. The oscillator has no inputs.
func (n *XYNode) Write(Consumer, *Buffer) {}

// Read implements Node.
func (n *XYNode) Read(Producer) *Buffer { return &n.out }

// Tick implements Node.
func (n *XYNode) Tick() {
	if v, ok := n.x.Poll(); ok {
		n.osc.SetX(v)
	}
	if v, ok := n.y.Poll(); ok {
		n.osc.SetY(v)
	}
	if v, ok := n.frequency.Poll(); ok {
		n.osc.SetFrequency(v)
	}
	n.osc.Populate(n.out[:], oscillator.Overwrite)
}

func checkRange(name string, v, lo, hi float32) {
	if !(v >= lo && v <= hi) {
		panic(fmt.Sprintf("synth: %s must be in [%v, %v], got %v", name, lo, hi, v))
	}
}
