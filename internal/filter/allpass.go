package filter

// AllPass is a Schroeder all-pass filter built on the same delay line as Comb.
type AllPass struct {
	delayLine
}

// NewAllPass creates an all-pass filter with gain 0 and a one frame delay.
func NewAllPass(sampleRate float64) *AllPass {
	return &AllPass{delayLine: newDelayLine(sampleRate)}
}

// Tick filters one sample.
func (a *AllPass) Tick(x float32) float32 {
	feedforward := -a.gain * x
	delayed := a.tap()
	feedback := (feedforward + delayed) * a.gain
	a.buffer.Write(feedback + x)
	return feedforward + delayed
}

// Process filters buf in place.
func (a *AllPass) Process(buf []float32) {
	for i, x := range buf {
		buf[i] = a.Tick(x)
	}
}
