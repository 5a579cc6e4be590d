package filter

// Comb is a feedback comb filter: y[n] = x[n-delay] + gain·y[n-delay].
type Comb struct {
	delayLine
}

// NewComb creates a comb filter with gain 0 and a one frame delay.
func NewComb(sampleRate float64) *Comb {
	return &Comb{delayLine: newDelayLine(sampleRate)}
}

// Tick filters one sample.
func (c *Comb) Tick(x float32) float32 {
	y := c.tap()
	c.buffer.Write(x + y*c.gain)
	return y
}

// Process filters buf in place.
func (c *Comb) Process(buf []float32) {
	for i, x := range buf {
		buf[i] = c.Tick(x)
	}
}
