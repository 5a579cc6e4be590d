// Command analyze-wavetable prints an aliasing report for the antialiased
// wavetables.
//
// For each test frequency it renders a detuned unison oscillator, takes a
// Kaiser-windowed spectrum and reports the lowest spectral peak. Any peak
// below the lowest voice frequency is an alias folded back from above
// Nyquist.
//
// Usage:
//
//	analyze-wavetable
//	analyze-wavetable -wave square -voices 7 -detune 2 -rate 48000
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tphakala/go-audio-synth/internal/mathutil"
	"github.com/tphakala/go-audio-synth/internal/oscillator"
	"github.com/tphakala/go-audio-synth/internal/spectral"
	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

const (
	defaultSampleRate  = 44100
	defaultWave        = "saw"
	defaultVoices      = 7
	defaultDetune      = 1.0   // Semitones
	defaultSeconds     = 4.0   // Long enough to resolve sub-hertz detune
	defaultAttenuation = 120.0 // Kaiser window sidelobe level in dB
	defaultThreshold   = 0.1   // Peak threshold relative to the maximum

	minPeakFrequency = 10.0 // Ignore DC leakage
	peakTolerance    = 2.0  // Hz, covers the window main lobe at four seconds
)

var testFrequencies = []float32{100, 440, 1000, 2500, 5000, 9000, 15000}

// result is one row of the report.
type result struct {
	frequency float32
	lowest    float32
	peak      float64
	found     bool
}

func (r result) aliased() bool {
	return r.found && r.peak < float64(r.lowest)-peakTolerance
}

func main() {
	sampleRate := flag.Int("rate", defaultSampleRate, "Sample rate in Hz")
	wave := flag.String("wave", defaultWave, "Waveform: saw, square, triangle, sine")
	voices := flag.Int("voices", defaultVoices, "Unison voices (1-7)")
	detune := flag.Float64("detune", defaultDetune, "Detune of the outer voices in semitones")
	seconds := flag.Float64("seconds", defaultSeconds, "Analysis length in seconds")
	attenuation := flag.Float64("attenuation", defaultAttenuation, "Kaiser window attenuation in dB")
	threshold := flag.Float64("threshold", defaultThreshold, "Peak threshold relative to the maximum")
	flag.Parse()

	table, err := buildTable(*wave, float64(*sampleRate))
	if err != nil {
		log.Fatal(err)
	}

	beta := mathutil.KaiserBeta(*attenuation)
	n := int(*seconds * float64(*sampleRate))

	fmt.Printf("=== Aliasing report: %s, %d voices, detune %.2f, %d Hz ===\n",
		*wave, *voices, *detune, *sampleRate)
	fmt.Printf("Kaiser beta %.3f, threshold %.2f, %d samples\n\n", beta, *threshold, n)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Frequency\tLowest voice\tLowest peak\tStatus\t")

	failures := 0
	for _, f := range testFrequencies {
		if float64(f) >= float64(*sampleRate)/2 {
			continue
		}
		r := analyze(table, f, *voices, float32(*detune), n, beta, *threshold)
		status := "ok"
		switch {
		case !r.found:
			status = "no peak"
		case r.aliased():
			status = "ALIAS"
			failures++
		}
		fmt.Fprintf(w, "%.0f Hz\t%.2f Hz\t%.2f Hz\t%s\t\n", r.frequency, r.lowest, r.peak, status)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}

	if failures > 0 {
		fmt.Printf("\n%d frequencies show aliasing\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nNo aliasing detected")
}

func buildTable(name string, sampleRate float64) (*wavetable.Wavetable, error) {
	switch strings.ToLower(name) {
	case "saw":
		return wavetable.Saw(sampleRate)
	case "square":
		return wavetable.Square(sampleRate)
	case "triangle":
		return wavetable.Triangle(sampleRate)
	case "sine":
		return wavetable.Sine(sampleRate)
	default:
		return nil, fmt.Errorf("unknown waveform %q", name)
	}
}

// analyze renders n samples of a unison oscillator at f and locates the
// lowest spectral peak.
func analyze(table *wavetable.Wavetable, f float32, voices int, detune float32, n int, beta, threshold float64) result {
	osc := oscillator.NewOsc1(table, table.SampleRate())
	osc.SetVoices(voices)
	osc.SetDetune(detune)
	osc.SetFrequency(f)

	signal := make([]float32, n)
	osc.Populate(signal)

	lowest := f
	freqs := osc.VoiceFrequencies()
	for _, vf := range freqs[:osc.Voices()] {
		lowest = min(lowest, vf)
	}

	s := spectral.Analyze(signal, table.SampleRate(), spectral.WithKaiserWindow(beta))
	peak, ok := s.LowestPeakAbove(minPeakFrequency, threshold)
	return result{frequency: f, lowest: lowest, peak: peak, found: ok}
}
