package main

// Default command-line flag values
const (
	defaultSampleRate = 48000
	defaultWave       = "saw"
	defaultVoices     = 5
	defaultDetune     = 0.15 // Semitones
	defaultCutoff     = 2000.0
	defaultOctave     = 4
	defaultBufferMs   = 40
)

// Keyboard control limits
const (
	minOctave    = 0
	maxOctave    = 8
	minCutoff    = 50.0
	cutoffStep   = 1.25 // Multiplier per key press
	detuneStep   = 0.05 // Semitones per key press
	maxDetune    = 2.0
	notesPerOct  = 12
	octaveOffset = 12 // MIDI note of C0
	keyBuffer    = 16
)

// Output format
const (
	stereoChannels = 2
	bytesPerSample = 4 // float32 little-endian
	bytesPerFrame  = stereoChannels * bytesPerSample
	msPerSecond    = 1000
)

// Control keys
const (
	keyQuit       = 'q'
	keyCtrlC      = 3
	keyOctaveDown = 'z'
	keyOctaveUp   = 'x'
	keyCutoffDown = '['
	keyCutoffUp   = ']'
	keyDetuneDown = '-'
	keyDetuneUp   = '='
	keyVoicesDown = ','
	keyVoicesUp   = '.'
	keySilence    = ' '
)
