package oscillator

import "github.com/tphakala/go-audio-synth/internal/mathutil"

// phasor is a normalized phase accumulator in [0, 1).
type phasor struct {
	phase float32
	step  float32
}

func (p *phasor) setFrequency(frequency, sampleRate float32) {
	p.step = frequency / sampleRate
}

func (p *phasor) set(phase float32) {
	p.phase = wrapUnit(phase)
}

func (p *phasor) advance() {
	p.phase += p.step
	if p.phase >= 1 || p.phase < 0 {
		p.phase = wrapUnit(p.phase)
	}
}

func wrapUnit(v float32) float32 {
	if v >= 0 && v < 1 {
		return v
	}
	return mathutil.Wrap(v, 1)
}
