package synth

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-synth/internal/filter"
	"github.com/tphakala/go-audio-synth/internal/simdops"
)

// FilterNode is a state-variable filter. It reads PortIn and writes PortOut.
type FilterNode struct {
	svf     *filter.StateVariable
	in, out Buffer
	mode    *Param
	cutoff  *Param
	qFactor *Param
	limit   float32
}

// NewFilterNode creates a filter in mode with a 1 kHz cutoff (capped at an
// eighth of sampleRate) and a Butterworth Q.
func NewFilterNode(sampleRate float64, mode FilterMode) *FilterNode {
	svf := filter.NewStateVariable(sampleRate)
	svf.SetMode(mode)
	cutoff := math.Min(defaultCutoff, sampleRate/8)
	svf.SetFrequency(cutoff)
	svf.SetQFactor(defaultQFactor)
	return &FilterNode{
		svf:     svf,
		mode:    NewParam(float32(mode)),
		cutoff:  NewParam(float32(cutoff)),
		qFactor: NewParam(defaultQFactor),
		limit:   float32(MaxCutoff(sampleRate)),
	}
}

// MaxCutoff returns the highest cutoff a FilterNode accepts at sampleRate,
// a sixth of the rate. Higher cutoffs would drive the filter unstable.
func MaxCutoff(sampleRate float64) float64 { return filter.MaxFrequency(sampleRate) }

// SetMode switches the filter response.
func (n *FilterNode) SetMode(mode FilterMode) {
	if mode < LowPass || mode > BandReject {
		panic(fmt.Sprintf("synth: unknown filter mode %d", mode))
	}
	n.mode.Store(float32(mode))
}

// SetFrequency sets the cutoff in Hz. hz must be in [0, MaxCutoff].
func (n *FilterNode) SetFrequency(hz float32) {
	checkRange("cutoff", hz, 0, n.limit)
	n.cutoff.Store(hz)
}

// SetQFactor sets the resonance. q must be positive and finite.
func (n *FilterNode) SetQFactor(q float32) {
	if !(q > 0) || math.IsInf(float64(q), 0) {
		panic(fmt.Sprintf("synth: Q factor must be positive, got %v", q))
	}
	n.qFactor.Store(q)
}

// Consumers implements Node.
func (n *FilterNode) Consumers() []Consumer { return effectInputs }

// Producers implements Node.
func (n *FilterNode) Producers() []Producer { return generatorOutputs }

// Write implements Node.
func (n *FilterNode) Write(_ Consumer, buf *Buffer) { n.in = *buf }

// Read implements Node.
func (n *FilterNode) Read(Producer) *Buffer { return &n.out }

// Tick implements Node.
func (n *FilterNode) Tick() {
	if v, ok := n.mode.Poll(); ok {
		n.svf.SetMode(FilterMode(v))
	}
	if v, ok := n.cutoff.Poll(); ok {
		n.svf.SetFrequency(float64(v))
	}
	if v, ok := n.qFactor.Poll(); ok {
		n.svf.SetQFactor(float64(v))
	}
	n.out = n.in
	n.in.Clear()
	n.svf.Process(n.out[:])
}

// delayParams carries the parameters shared by the comb and all-pass nodes.
type delayParams struct {
	sampleRate float64
	maxFrames  int
	gain       *Param
	frames     *Param
}

func newDelayParams(sampleRate float64, maxFrames, frames int) delayParams {
	return delayParams{
		sampleRate: sampleRate,
		maxFrames:  maxFrames,
		gain:       NewParam(0),
		frames:     NewParam(float32(frames)),
	}
}

// SetGain sets the feedback gain. gain must be in [0, 1).
func (d *delayParams) SetGain(gain float32) {
	if !(gain >= 0 && gain < 1) {
		panic(fmt.Sprintf("synth: gain must be in [0, 1), got %v", gain))
	}
	d.gain.Store(gain)
}

// SetDelay sets the delay in seconds, truncated to whole frames. The result
// must be at least one frame and at most one second.
func (d *delayParams) SetDelay(seconds float64) {
	d.SetDelayFrames(int(seconds * d.sampleRate))
}

// SetDelayFrames sets the delay in frames.
func (d *delayParams) SetDelayFrames(frames int) {
	if frames < 1 || frames > d.maxFrames {
		panic(fmt.Sprintf("synth: delay must be in [1, %d] frames, got %d", d.maxFrames, frames))
	}
	d.frames.Store(float32(frames))
}

// delayLine is the parameter surface of filter.Comb and filter.AllPass.
type delayLine interface {
	SetGain(float32)
	SetDelayFrames(int)
	Process([]float32)
}

func (d *delayParams) apply(line delayLine) {
	if v, ok := d.gain.Poll(); ok {
		line.SetGain(v)
	}
	if v, ok := d.frames.Poll(); ok {
		line.SetDelayFrames(int(v))
	}
}

// CombNode is a feedback comb filter. It reads PortIn and writes PortOut.
type CombNode struct {
	delayParams
	comb    *filter.Comb
	in, out Buffer
}

// NewCombNode creates a comb filter with zero feedback and a one-frame delay.
func NewCombNode(sampleRate float64) *CombNode {
	comb := filter.NewComb(sampleRate)
	return &CombNode{
		delayParams: newDelayParams(sampleRate, comb.MaxDelayFrames(), comb.DelayFrames()),
		comb:        comb,
	}
}

// Consumers implements Node.
func (n *CombNode) Consumers() []Consumer { return effectInputs }

// Producers implements Node.
func (n *CombNode) Producers() []Producer { return generatorOutputs }

// Write implements Node.
func (n *CombNode) Write(_ Consumer, buf *Buffer) { n.in = *buf }

// Read implements Node.
func (n *CombNode) Read(Producer) *Buffer { return &n.out }

// Tick implements Node.
func (n *CombNode) Tick() {
	n.apply(n.comb)
	n.out = n.in
	n.in.Clear()
	n.comb.Process(n.out[:])
}

// AllPassNode is a Schroeder all-pass filter. It reads PortIn and writes
// PortOut.
type AllPassNode struct {
	delayParams
	allPass *filter.AllPass
	in, out Buffer
}

// NewAllPassNode creates an all-pass filter with zero gain and a one-frame
// delay.
func NewAllPassNode(sampleRate float64) *AllPassNode {
	ap := filter.NewAllPass(sampleRate)
	return &AllPassNode{
		delayParams: newDelayParams(sampleRate, ap.MaxDelayFrames(), ap.DelayFrames()),
		allPass:     ap,
	}
}

// Consumers implements Node.
func (n *AllPassNode) Consumers() []Consumer { return effectInputs }

// Producers implements Node.
func (n *AllPassNode) Producers() []Producer { return generatorOutputs }

// Write implements Node.
func (n *AllPassNode) Write(_ Consumer, buf *Buffer) { n.in = *buf }

// Read implements Node.
func (n *AllPassNode) Read(Producer) *Buffer { return &n.out }

// Tick implements Node.
func (n *AllPassNode) Tick() {
	n.apply(n.allPass)
	n.out = n.in
	n.in.Clear()
	n.allPass.Process(n.out[:])
}

// MixerNode sums up to four inputs, PortIn0 to PortIn3, each with its own
// gain, into PortOut. Unconnected inputs contribute silence.
type MixerNode struct {
	inputs [mixerInputs]Buffer
	gains  [mixerInputs]float32
	params [mixerInputs]*Param
	out    Buffer
	ops    *simdops.Ops[float32]
}

// NewMixerNode creates a mixer with every gain at 1.
func NewMixerNode() *MixerNode {
	n := &MixerNode{ops: simdops.Float32Ops()}
	for i := range n.params {
		n.gains[i] = 1
		n.params[i] = NewParam(1)
	}
	return n
}

// SetGain sets the gain of input i, which must be in [0, 4). The gain must
// be finite.
func (n *MixerNode) SetGain(i int, gain float32) {
	if i < 0 || i >= mixerInputs {
		panic(fmt.Sprintf("synth: mixer input must be in [0, %d), got %d", mixerInputs, i))
	}
	if math.IsNaN(float64(gain)) || math.IsInf(float64(gain), 0) {
		panic(fmt.Sprintf("synth: mixer gain must be finite, got %v", gain))
	}
	n.params[i].Store(gain)
}

// Consumers implements Node.
func (n *MixerNode) Consumers() []Consumer { return mixerConsumers }

// Producers implements Node.
func (n *MixerNode) Producers() []Producer { return generatorOutputs }

// Write implements Node.
func (n *MixerNode) Write(c Consumer, buf *Buffer) {
	switch c {
	case PortIn0:
		n.inputs[0] = *buf
	case PortIn1:
		n.inputs[1] = *buf
	case PortIn2:
		n.inputs[2] = *buf
	case PortIn3:
		n.inputs[3] = *buf
	}
}

// Read implements Node.
func (n *MixerNode) Read(Producer) *Buffer { return &n.out }

// Tick implements Node.
func (n *MixerNode) Tick() {
	for i, p := range n.params {
		if v, ok := p.Poll(); ok {
			n.gains[i] = v
		}
	}
	n.out.Clear()
	for i := range n.inputs {
		if g := n.gains[i]; g != 0 {
			n.ops.AddScaled(n.out[:], g, n.inputs[i][:])
		}
		n.inputs[i].Clear()
	}
}
