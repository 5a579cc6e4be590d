package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSampleRate = 48000

func TestComb_Impulses(t *testing.T) {
	c := NewComb(testSampleRate)
	c.SetDelayFrames(2)
	c.SetGain(0.5)

	buf := []float32{8, 0, 8, 0, 0, 0, 0, 0}
	c.Process(buf)
	assert.Equal(t, []float32{0, 0, 8, 0, 12, 0, 6, 0}, buf)
}

func TestAllPass_Impulses(t *testing.T) {
	a := NewAllPass(testSampleRate)
	a.SetDelayFrames(2)
	a.SetGain(0.5)

	buf := []float32{8, 0, 8, 0, 0, 0, 0, 0}
	a.Process(buf)
	assert.Equal(t, []float32{-4, 0, 2, 0, 9, 0, 4.5, 0}, buf)
}

func TestGainBoundary(t *testing.T) {
	tests := []struct {
		name  string
		gain  float32
		valid bool
	}{
		{"zero", 0.0, true},
		{"just below one", 0.999, true},
		{"one", 1.0, false},
		{"negative", -0.1, false},
		{"above one", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComb(testSampleRate)
			a := NewAllPass(testSampleRate)
			if tt.valid {
				assert.NotPanics(t, func() { c.SetGain(tt.gain) })
				assert.NotPanics(t, func() { a.SetGain(tt.gain) })
				assert.InDelta(t, tt.gain, c.Gain(), 0)
				return
			}
			assert.Panics(t, func() { c.SetGain(tt.gain) })
			assert.Panics(t, func() { a.SetGain(tt.gain) })
		})
	}
}

func TestSetDelay_SecondsTruncate(t *testing.T) {
	c := NewComb(1000)
	c.SetDelay(0.0125)
	assert.Equal(t, 12, c.DelayFrames())
	c.SetDelay(1.0)
	assert.Equal(t, 1000, c.DelayFrames())
	assert.Equal(t, 1000, c.MaxDelayFrames())
}

func TestSetDelay_Bounds(t *testing.T) {
	c := NewComb(1000)
	assert.Panics(t, func() { c.SetDelayFrames(0) })
	assert.Panics(t, func() { c.SetDelayFrames(1001) })
	assert.Panics(t, func() { c.SetDelay(0.0001) }, "truncates to zero frames")
	assert.NotPanics(t, func() { c.SetDelayFrames(1000) })
}

func TestComb_MaximumDelay(t *testing.T) {
	c := NewComb(100)
	c.SetDelayFrames(100)
	out := make([]float32, 0, 201)
	for i := 0; i < 201; i++ {
		x := float32(0)
		if i == 0 {
			x = 1
		}
		out = append(out, c.Tick(x))
	}
	assert.InDelta(t, 1.0, out[100], 0)
	assert.InDelta(t, 0.0, out[99], 0)
	assert.InDelta(t, 0.0, out[200], 0, "zero gain does not recirculate")
}

func TestAllPass_UnityEnergy(t *testing.T) {
	// An all-pass keeps the total energy of an impulse response.
	a := NewAllPass(1000)
	a.SetDelayFrames(7)
	a.SetGain(0.6)

	var energy float64
	for i := 0; i < 1000; i++ {
		x := float32(0)
		if i == 0 {
			x = 1
		}
		y := float64(a.Tick(x))
		energy += y * y
	}
	assert.InDelta(t, 1.0, energy, 1e-4)
}

func TestDelayLine_Reset(t *testing.T) {
	c := NewComb(testSampleRate)
	c.SetDelayFrames(2)
	c.SetGain(0.5)
	first := []float32{8, 0, 8, 0, 0, 0, 0, 0}
	c.Process(first)

	c.Reset()
	second := []float32{8, 0, 8, 0, 0, 0, 0, 0}
	c.Process(second)
	require.Equal(t, first, second)
}

func TestNewDelayLine_RejectsBadRate(t *testing.T) {
	assert.Panics(t, func() { NewComb(0) })
	assert.Panics(t, func() { NewAllPass(-1) })
}

func BenchmarkComb_Process(b *testing.B) {
	c := NewComb(testSampleRate)
	c.SetDelayFrames(1200)
	c.SetGain(0.7)
	buf := make([]float32, 32)
	b.ReportAllocs()
	for b.Loop() {
		c.Process(buf)
	}
}
