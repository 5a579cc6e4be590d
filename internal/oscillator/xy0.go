package oscillator

import (
	"fmt"
	"math"

	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

// XY0 blends three wavetables that share one phase. The zero table sits at
// the origin and the x and y tables at the ends of their axes:
//
//	zero_weight = max(0, 1 - sqrt(|x| + |y|))
//	out = (zero_weight·Z + x·X + y·Y) / (zero_weight + |x| + |y|)
//
// A negative coordinate plays its axis table inverted.
type XY0 struct {
	zero, x, y *wavetable.Wavetable
	sampleRate float32
	frequency  float32
	amplitude  float32
	posX, posY float32

	// Blend weights, already divided by the normalizer.
	weightZero, weightX, weightY float32

	phasor
}

// NewXY0 creates a blend oscillator at the origin, 440 Hz and unit amplitude.
func NewXY0(zero, x, y *wavetable.Wavetable, sampleRate float64) *XY0 {
	if zero == nil || x == nil || y == nil {
		panic("oscillator: nil wavetable")
	}
	if !(sampleRate > 0) {
		panic(fmt.Sprintf("oscillator: sample rate must be positive, got %v", sampleRate))
	}
	o := &XY0{
		zero:       zero,
		x:          x,
		y:          y,
		sampleRate: float32(sampleRate),
		amplitude:  1,
	}
	o.SetFrequency(440)
	o.updateWeights()
	return o
}

// SetFrequency sets the playback frequency in Hz.
func (o *XY0) SetFrequency(frequency float32) {
	o.frequency = frequency
	o.setFrequency(frequency, o.sampleRate)
}

// SetAmplitude sets the output gain.
func (o *XY0) SetAmplitude(amplitude float32) { o.amplitude = amplitude }

// SetX moves the blend along the x axis. x must be in [-1, 1].
func (o *XY0) SetX(x float32) {
	checkUnitRange("x", x)
	o.posX = x
	o.updateWeights()
}

// SetY moves the blend along the y axis. y must be in [-1, 1].
func (o *XY0) SetY(y float32) {
	checkUnitRange("y", y)
	o.posY = y
	o.updateWeights()
}

// X returns the x coordinate.
func (o *XY0) X() float32 { return o.posX }

// Y returns the y coordinate.
func (o *XY0) Y() float32 { return o.posY }

// Weights returns the normalized weights of the zero, x and y tables.
func (o *XY0) Weights() (zero, x, y float32) {
	return o.weightZero, o.weightX, o.weightY
}

// SetPhase moves the oscillator to phase, wrapped into [0, 1).
func (o *XY0) SetPhase(phase float32) { o.set(phase) }

// Reset returns the phase to 0.
func (o *XY0) Reset() { o.phase = 0 }

// Populate renders len(buf) samples according to mode.
func (o *XY0) Populate(buf []float32, mode FillMode) {
	if mode == Dry {
		for range buf {
			o.advance()
		}
		return
	}
	gain := o.amplitude * LowFrequencyFade(o.frequency)
	wz, wx, wy := o.weightZero*gain, o.weightX*gain, o.weightY*gain
	for i := range buf {
		v := wz * o.zero.Read(o.phase, o.frequency)
		if wx != 0 {
			v += wx * o.x.Read(o.phase, o.frequency)
		}
		if wy != 0 {
			v += wy * o.y.Read(o.phase, o.frequency)
		}
		if mode == Add {
			buf[i] += v
		} else {
			buf[i] = v
		}
		o.advance()
	}
}

func (o *XY0) updateWeights() {
	ax, ay := abs(o.posX), abs(o.posY)
	zero := float32(math.Max(0, 1-math.Sqrt(float64(ax+ay))))
	total := zero + ax + ay
	o.weightZero = zero / total
	o.weightX = o.posX / total
	o.weightY = o.posY / total
}

func checkUnitRange(name string, v float32) {
	if !(v >= -1 && v <= 1) {
		panic(fmt.Sprintf("oscillator: %s must be in [-1, 1], got %v", name, v))
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
