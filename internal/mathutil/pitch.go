package mathutil

import "math"

// SemitoneRatio returns the equal-tempered frequency ratio 2^(semitones/12).
func SemitoneRatio(semitones float32) float32 {
	return float32(math.Exp2(float64(semitones) / semitonesPerOctave))
}

// Detune shifts frequency by the given number of semitones.
func Detune(frequency, semitones float32) float32 {
	if semitones == 0 {
		return frequency
	}
	return frequency * SemitoneRatio(semitones)
}

// NoteToFrequency converts a (possibly fractional) MIDI note number to Hz.
func NoteToFrequency(note float64) float64 {
	return referenceFrequency * math.Exp2((note-referenceNote)/semitonesPerOctave)
}

// Wrap maps v into [0, n) with Euclidean semantics.
func Wrap(v, n float32) float32 {
	r := float32(math.Mod(float64(v), float64(n)))
	if r < 0 {
		r += n
	}
	if r >= n {
		r = 0
	}
	return r
}
