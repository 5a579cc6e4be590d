package oscillator

// Voice counts
const (
	// MaxVoices is the largest unison voice count of Osc1.
	MaxVoices = 7

	// MorphVoices is the fixed voice count of Osc2.
	MorphVoices = 5

	// morphCentre is the index of Osc2's centre voice.
	morphCentre = MorphVoices / 2
)

// Low-frequency fade
const (
	// fadeStart is the frequency below which a voice is silent.
	fadeStart = 15.0

	// fadeEnd is the frequency above which a voice plays at full amplitude.
	fadeEnd = 20.0
)
