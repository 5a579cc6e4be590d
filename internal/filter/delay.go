package filter

import (
	"fmt"

	"github.com/tphakala/go-audio-synth/internal/ringbuffer"
)

// delayLine holds the state shared by the comb and all-pass filters: a ring
// buffer sized to one second of audio, the feedback gain and the delay in frames.
type delayLine struct {
	sampleRate float64
	buffer     *ringbuffer.RingBuffer
	gain       float32
	delay      int
}

func newDelayLine(sampleRate float64) delayLine {
	if !(sampleRate >= 1) {
		panic(fmt.Sprintf("filter: sample rate must be at least 1 Hz, got %v", sampleRate))
	}
	return delayLine{
		sampleRate: sampleRate,
		buffer:     ringbuffer.New(int(sampleRate * delayLineSeconds)),
		delay:      defaultDelay,
	}
}

// SetGain sets the feedback gain. Values outside [0, 1) would make the
// recursion unstable and panic.
func (d *delayLine) SetGain(gain float32) {
	if !(gain >= 0 && gain < 1) {
		panic(fmt.Sprintf("filter: gain must be in [0, 1), got %v", gain))
	}
	d.gain = gain
}

// Gain returns the feedback gain.
func (d *delayLine) Gain() float32 { return d.gain }

// SetDelay sets the delay in seconds, truncated to whole frames.
func (d *delayLine) SetDelay(seconds float64) {
	d.SetDelayFrames(int(seconds * d.sampleRate))
}

// SetDelayFrames sets the delay in frames. It must be between 1 and the ring
// buffer capacity.
func (d *delayLine) SetDelayFrames(frames int) {
	if frames < 1 || frames > d.buffer.Capacity() {
		panic(fmt.Sprintf("filter: delay must be in [1, %d] frames, got %d", d.buffer.Capacity(), frames))
	}
	d.delay = frames
}

// DelayFrames returns the delay in frames.
func (d *delayLine) DelayFrames() int { return d.delay }

// MaxDelayFrames returns the longest supported delay.
func (d *delayLine) MaxDelayFrames() int { return d.buffer.Capacity() }

// Reset clears the delay line.
func (d *delayLine) Reset() { d.buffer.Reset() }

// tap reads the sample written delay frames ago.
func (d *delayLine) tap() float32 {
	return d.buffer.Peek(-d.delay + 1)
}
