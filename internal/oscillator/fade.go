package oscillator

// LowFrequencyFade returns the amplitude factor for a voice at frequency Hz:
// 0 up to 15 Hz, 1 from 20 Hz, and a linear ramp in between. The sign of the
// frequency is ignored.
func LowFrequencyFade(frequency float32) float32 {
	if frequency < 0 {
		frequency = -frequency
	}
	switch {
	case frequency <= fadeStart:
		return 0
	case frequency >= fadeEnd:
		return 1
	default:
		return (frequency - fadeStart) / (fadeEnd - fadeStart)
	}
}
