package filter

// State-variable filter defaults
const (
	defaultFrequency = 1000.0             // Hz
	defaultQFactor   = 0.7071067811865476 // Butterworth response
)

// State-variable filter stability
const (
	maxFrequencyDivisor = 6    // Highest cutoff is sampleRate / maxFrequencyDivisor
	nyquistRatio        = 0.5  // Where 2·sin(π·f/sr) peaks
	stabilityMargin     = 0.98 // Keeps the poles clear of the unit circle
)

// Output limits of the state-variable filter
const (
	outputMin = -1.0
	outputMax = 1.0
)

// Delay line defaults
const (
	delayLineSeconds = 1.0 // Ring buffer capacity in seconds of audio
	defaultDelay     = 1   // Frames
)
