// Package filter provides the recursive filters of the synthesis toolkit:
// a four-mode state-variable filter and the ring-buffer based comb and
// all-pass filters.
//
// Parameter setters validate their input and panic on values that would make
// a filter unstable. Tick and Process never fail and never allocate, so they
// are safe to call from the audio thread.
package filter
