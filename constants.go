package synth

import "github.com/tphakala/go-audio-synth/internal/pipeline"

// Common sample rates.
const (
	// RateCD is the CD quality sample rate.
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000
)

// Sample rate limits accepted by Config.Validate.
const (
	minSampleRate = 8000
	maxSampleRate = 384000
)

// Engine layout
const (
	stereoChannels = 2
	blockFrames    = pipeline.BufferSize
)

// Mixer layout
const mixerInputs = 4

// Node defaults
const (
	defaultFrequency = 440.0
	defaultCutoff    = 1000.0
	defaultQFactor   = 0.7071067811865476
)
