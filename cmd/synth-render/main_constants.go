package main

// Default command-line flag values
const (
	defaultSampleRate = 48000 // DAT/DVD sample rate
	defaultSeconds    = 2.0
	defaultNote       = 57.0 // A3
	defaultVoices     = 5
	defaultDetune     = 0.15 // Semitones
	defaultCutoff     = 4000.0
	defaultQFactor    = 0.7071
	defaultBitDepth   = 16
	defaultWave       = "saw"
	defaultBreadth    = 0.5
	defaultPan        = 0.8
)

// Delay effect defaults
const (
	defaultFeedback = 0.0 // Comb feedback, 0 disables the effect
	defaultDelayMs  = 37.0
	allPassGain     = 0.5
	allPassDelayMs  = 5.0
	wetGain         = 0.5
	maxDelayMs      = 1000.0 // Delay lines hold one second
)

// Unit conversion
const (
	msPerSecond = 1000.0
	minArgs     = 1
)

// WAV format
const (
	stereoChannels = 2
	pcmFormat      = 1 // WAVE_FORMAT_PCM
	bitDepth16     = 16
	bitDepth24     = 24
	maxInt16       = 32767.0
	maxInt24       = 8388607.0
	renderChunk    = 4096 // Frames per Render call
)
