package main

import (
	"fmt"
	"strings"

	synth "github.com/tphakala/go-audio-synth"
)

// noteKeys maps the two bottom letter rows to a chromatic octave, the usual
// tracker layout.
var noteKeys = map[byte]int{
	'a': 0, 'w': 1, 's': 2, 'e': 3, 'd': 4, 'f': 5, 't': 6,
	'g': 7, 'y': 8, 'h': 9, 'u': 10, 'j': 11, 'k': 12,
}

// controller applies key presses to the oscillator and filter nodes.
type controller struct {
	osc      *synth.OscillatorNode
	filter   *synth.FilterNode
	limit    float64
	octave   int
	cutoff   float64
	detune   float64
	voices   int
	note     float64
	sounding bool
}

func newController(osc *synth.OscillatorNode, filter *synth.FilterNode, sampleRate float64, opts options) *controller {
	c := &controller{
		osc:     osc,
		filter:  filter,
		limit:   synth.MaxCutoff(sampleRate),
		octave:  defaultOctave,
		cutoff:  opts.cutoff,
		detune:  opts.detune,
		voices:  opts.voices,
	}
	c.silence()
	c.applyFilter()
	osc.SetDetune(float32(c.detune))
	osc.SetVoices(c.voices)
	return c
}

// handle applies one key press. It reports false when the key asks to quit.
func (c *controller) handle(key byte) bool {
	if off, ok := noteKeys[key]; ok {
		c.note = float64(octaveOffset + c.octave*notesPerOct + off)
		c.sounding = true
		c.osc.SetNote(c.note)
		return true
	}

	switch key {
	case keyQuit, keyCtrlC:
		return false
	case keyOctaveDown:
		c.octave = max(c.octave-1, minOctave)
	case keyOctaveUp:
		c.octave = min(c.octave+1, maxOctave)
	case keyCutoffDown:
		c.cutoff = max(c.cutoff/cutoffStep, minCutoff)
		c.applyFilter()
	case keyCutoffUp:
		c.cutoff = min(c.cutoff*cutoffStep, c.limit)
		c.applyFilter()
	case keyDetuneDown:
		c.detune = max(c.detune-detuneStep, 0)
		c.osc.SetDetune(float32(c.detune))
	case keyDetuneUp:
		c.detune = min(c.detune+detuneStep, maxDetune)
		c.osc.SetDetune(float32(c.detune))
	case keyVoicesDown:
		c.voices = max(c.voices-1, 1)
		c.osc.SetVoices(c.voices)
	case keyVoicesUp:
		c.voices = min(c.voices+1, synth.MaxVoices)
		c.osc.SetVoices(c.voices)
	case keySilence:
		c.silence()
	}
	return true
}

// silence parks the oscillator below the audible fade.
func (c *controller) silence() {
	c.sounding = false
	c.osc.SetFrequency(0)
}

func (c *controller) applyFilter() {
	c.filter.SetFrequency(float32(c.cutoff))
}

// status renders a one-line summary of the current controls.
func (c *controller) status() string {
	var b strings.Builder
	if c.sounding {
		fmt.Fprintf(&b, "note %3.0f (%7.2f Hz)", c.note, synth.NoteFrequency(c.note))
	} else {
		b.WriteString("note  --            ")
	}
	fmt.Fprintf(&b, "  octave %d  cutoff %6.0f Hz  detune %.2f  voices %d",
		c.octave, c.cutoff, c.detune, c.voices)
	return b.String()
}
