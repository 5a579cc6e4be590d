// Package oscillator implements wavetable oscillators.
//
// Circular reads a single wavetable. XY0 blends three tables on a
// triangular surface. Osc1 stacks up to seven detuned Circular voices and
// Osc2 renders five stereo voices that morph through a bank of wavetables.
//
// Setters validate their input and panic on values outside the documented
// range. Populate methods never fail and never allocate.
package oscillator
