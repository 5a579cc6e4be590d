package filter

import (
	"fmt"
	"math"
)

// Mode selects the state-variable filter response.
type Mode int

const (
	// LowPass passes content below the cutoff.
	LowPass Mode = iota

	// HighPass passes content above the cutoff.
	HighPass

	// BandPass passes a band around the cutoff.
	BandPass

	// BandReject removes a band around the cutoff (notch).
	BandReject
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	case BandPass:
		return "bandpass"
	case BandReject:
		return "bandreject"
	default:
		return "unknown"
	}
}

// StateVariable is a Chamberlin state-variable filter with two one-sample
// delay registers. All four responses come from the same recurrence; the mode
// only selects which internal sum is emitted.
type StateVariable struct {
	sampleRate float64
	mode       Mode
	frequency  float64
	qFactor    float64

	f float32 // 2·sin(π·frequency/sampleRate), capped at the stable limit
	q float32 // 1/qFactor

	delay1 float32
	delay2 float32
}

// NewStateVariable creates a low-pass filter at 1 kHz with a Butterworth Q.
// The default frequency is lowered for very low sample rates so that the
// initial coefficient stays in a stable range.
func NewStateVariable(sampleRate float64) *StateVariable {
	if !(sampleRate > 0) {
		panic(fmt.Sprintf("filter: sample rate must be positive, got %v", sampleRate))
	}
	s := &StateVariable{sampleRate: sampleRate, mode: LowPass}
	s.SetFrequency(math.Min(defaultFrequency, sampleRate/8))
	s.SetQFactor(defaultQFactor)
	return s
}

// SetMode switches the response. Internal state is kept.
func (s *StateVariable) SetMode(mode Mode) {
	if mode < LowPass || mode > BandReject {
		panic(fmt.Sprintf("filter: unknown mode %d", mode))
	}
	s.mode = mode
}

// Mode returns the current response.
func (s *StateVariable) Mode() Mode { return s.mode }

// MaxFrequency returns the highest cutoff the filter tracks accurately at
// sampleRate. Above it the recurrence needs a coefficient beyond its stable
// range for common Q values.
func MaxFrequency(sampleRate float64) float64 {
	return sampleRate / maxFrequencyDivisor
}

// SetFrequency sets the cutoff (or centre) frequency in Hz. Frequencies whose
// coefficient would make the recurrence diverge at the current Q are held at
// the stable limit.
func (s *StateVariable) SetFrequency(frequency float64) {
	if !(frequency >= 0) {
		panic(fmt.Sprintf("filter: frequency must be non-negative, got %v", frequency))
	}
	s.frequency = frequency
	s.updateCoefficient()
}

// Frequency returns the cutoff frequency in Hz.
func (s *StateVariable) Frequency() float64 { return s.frequency }

// SetQFactor sets the resonance. Q must be positive.
func (s *StateVariable) SetQFactor(qFactor float64) {
	if !(qFactor > 0) || math.IsInf(qFactor, 0) {
		panic(fmt.Sprintf("filter: Q factor must be positive, got %v", qFactor))
	}
	s.qFactor = qFactor
	s.q = float32(1 / qFactor)
	s.updateCoefficient()
}

// QFactor returns the resonance.
func (s *StateVariable) QFactor() float64 { return s.qFactor }

// Tick filters one sample.
func (s *StateVariable) Tick(x float32) float32 {
	sum3 := s.delay1*s.f + s.delay2
	sum1 := x - sum3 - s.delay1*s.q
	sum2 := sum1*s.f + s.delay1

	var out float32
	switch s.mode {
	case LowPass:
		out = sum3
	case HighPass:
		out = sum1
	case BandPass:
		out = sum2
	case BandReject:
		out = sum1 + sum3
	}

	s.delay1 = sum2
	s.delay2 = sum3

	return min(max(out, outputMin), outputMax)
}

// Process filters buf in place.
func (s *StateVariable) Process(buf []float32) {
	for i, x := range buf {
		buf[i] = s.Tick(x)
	}
}

// updateCoefficient derives f from the frequency and caps it. The recurrence
// has poles inside the unit circle while f² + 2fq < 4, that is
// f < sqrt(q² + 4) - q.
func (s *StateVariable) updateCoefficient() {
	var q float64
	if s.qFactor > 0 {
		q = 1 / s.qFactor
	}
	limit := stabilityMargin * (math.Sqrt(q*q+4) - q)
	f := 2 * math.Sin(math.Pi*min(s.frequency/s.sampleRate, nyquistRatio))
	s.f = float32(min(f, limit))
}

// Reset clears the delay registers.
func (s *StateVariable) Reset() {
	s.delay1 = 0
	s.delay2 = 0
}
