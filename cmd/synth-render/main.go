// Command synth-render renders a synthesizer patch to a WAV file.
//
// Usage:
//
//	synth-render out.wav
//	synth-render -wave square -note 45 -voices 7 -detune 0.3 out.wav
//	synth-render -cycle cycle.wav -cutoff 1500 -feedback 0.6 out.wav
//	synth-render -morph -breadth 1 -pan 1 out.wav
//
// The patch is a unison oscillator (or, with -morph, a stereo morphing
// oscillator) into a low-pass filter, optionally followed by a comb and
// all-pass delay mixed back with the dry signal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	synth "github.com/tphakala/go-audio-synth"
)

type options struct {
	sampleRate int
	seconds    float64
	note       float64
	voices     int
	detune     float64
	cutoff     float64
	qFactor    float64
	wave       string
	cycle      string
	morph      bool
	breadth    float64
	pan        float64
	feedback   float64
	delayMs    float64
	bitDepth   int
	verbose    bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var opts options
	flag.IntVar(&opts.sampleRate, "rate", defaultSampleRate, "Output sample rate in Hz")
	flag.Float64Var(&opts.seconds, "seconds", defaultSeconds, "Length of the render in seconds")
	flag.Float64Var(&opts.note, "note", defaultNote, "MIDI note number (69 = A4)")
	flag.IntVar(&opts.voices, "voices", defaultVoices, "Unison voices (1-7)")
	flag.Float64Var(&opts.detune, "detune", defaultDetune, "Detune of the outer voices in semitones")
	flag.Float64Var(&opts.cutoff, "cutoff", defaultCutoff, "Low-pass cutoff in Hz")
	flag.Float64Var(&opts.qFactor, "q", defaultQFactor, "Low-pass resonance")
	flag.StringVar(&opts.wave, "wave", defaultWave, "Waveform: saw, sine, square, triangle, pulse")
	flag.StringVar(&opts.cycle, "cycle", "", "WAV file holding a single cycle (overrides -wave)")
	flag.BoolVar(&opts.morph, "morph", false, "Use the stereo morphing oscillator over saw, square and triangle")
	flag.Float64Var(&opts.breadth, "breadth", defaultBreadth, "Morph oscillator breadth (0-1)")
	flag.Float64Var(&opts.pan, "pan", defaultPan, "Morph oscillator stereo width (-1 to 1)")
	flag.Float64Var(&opts.feedback, "feedback", defaultFeedback, "Comb feedback (0 disables the delay)")
	flag.Float64Var(&opts.delayMs, "delay", defaultDelayMs, "Comb delay in milliseconds")
	flag.IntVar(&opts.bitDepth, "bits", defaultBitDepth, "Output bit depth: 16 or 24")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("missing output file")
	}
	outputPath := args[0]
	if err := opts.validate(); err != nil {
		return err
	}

	engine, err := synth.NewEngine(synth.Config{SampleRate: float64(opts.sampleRate)})
	if err != nil {
		return err
	}
	if err := buildPatch(engine, opts); err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Output: %s", outputPath)
		log.Printf("Rate: %d Hz, %d-bit, %.2fs", opts.sampleRate, opts.bitDepth, opts.seconds)
		log.Printf("Note: %.1f (%.2f Hz)", opts.note, synth.NoteFrequency(opts.note))
		log.Printf("Graph: %d nodes, %d edges", engine.Graph().Len(), len(engine.Graph().Edges()))
	}

	start := time.Now()
	frames, err := render(engine, outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s\n", filepath.Base(outputPath))
	fmt.Printf("  %d frames at %d Hz\n", frames, opts.sampleRate)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(), opts.seconds/elapsed.Seconds())
	return nil
}

func render(engine *synth.Engine, path string, opts options) (int, error) {
	out, err := createWAV(path, opts.sampleRate, opts.bitDepth)
	if err != nil {
		return 0, err
	}

	total := int(opts.seconds * float64(opts.sampleRate))
	chunk := make([]float32, stereoChannels*renderChunk)
	for done := 0; done < total; {
		n := min(renderChunk, total-done)
		frames := chunk[:n*stereoChannels]
		engine.Render(frames)
		if err := out.Write(frames); err != nil {
			_ = out.Close()
			return done, err
		}
		done += n
	}
	return total, out.Close()
}

// buildPatch wires the oscillator, filter and optional delay into the
// engine's graph and sets the outputs.
func buildPatch(engine *synth.Engine, opts options) error {
	g := engine.Graph()
	rate := engine.SampleRate()

	var sources []synth.Tap
	if opts.morph {
		node, err := morphOscillator(engine, opts)
		if err != nil {
			return err
		}
		id := g.AddNode(node)
		sources = []synth.Tap{{Node: id, Producer: synth.PortLeft}, {Node: id, Producer: synth.PortRight}}
	} else {
		table, err := oscillatorTable(engine, opts)
		if err != nil {
			return err
		}
		osc := synth.NewOscillatorNode(table)
		osc.SetVoices(opts.voices)
		osc.SetDetune(float32(opts.detune))
		osc.SetNote(opts.note)
		sources = []synth.Tap{{Node: g.AddNode(osc), Producer: synth.PortOut}}
	}

	outputs := make([]synth.Tap, 0, len(sources))
	for _, src := range sources {
		tap, err := channelChain(g, rate, src, opts)
		if err != nil {
			return err
		}
		outputs = append(outputs, tap)
	}
	if len(outputs) == 1 {
		return engine.SetOutput(outputs[0], outputs[0])
	}
	return engine.SetOutput(outputs[0], outputs[1])
}

// channelChain runs src through the low-pass filter and, when feedback is
// set, a comb and all-pass pair mixed in parallel with the dry signal.
func channelChain(g *synth.Graph, rate float64, src synth.Tap, opts options) (synth.Tap, error) {
	lp := synth.NewFilterNode(rate, synth.LowPass)
	lp.SetFrequency(float32(opts.cutoff))
	lp.SetQFactor(float32(opts.qFactor))
	lpID := g.AddNode(lp)
	if err := g.AddEdge(src.Node, src.Producer, lpID, synth.PortIn); err != nil {
		return synth.Tap{}, err
	}
	dry := synth.Tap{Node: lpID, Producer: synth.PortOut}
	if opts.feedback == 0 {
		return dry, nil
	}

	comb := synth.NewCombNode(rate)
	comb.SetGain(float32(opts.feedback))
	comb.SetDelay(opts.delayMs / msPerSecond)
	allPass := synth.NewAllPassNode(rate)
	allPass.SetGain(allPassGain)
	allPass.SetDelay(allPassDelayMs / msPerSecond)
	mix := synth.NewMixerNode()
	mix.SetGain(1, wetGain)

	combID := g.AddNode(comb)
	apID := g.AddNode(allPass)
	mixID := g.AddNode(mix)
	edges := []struct {
		from synth.NodeID
		to   synth.NodeID
		port synth.Consumer
	}{
		{lpID, combID, synth.PortIn},
		{combID, apID, synth.PortIn},
		{lpID, mixID, synth.PortIn0},
		{apID, mixID, synth.PortIn1},
	}
	for _, e := range edges {
		if err := g.AddEdge(e.from, synth.PortOut, e.to, e.port); err != nil {
			return synth.Tap{}, err
		}
	}
	return synth.Tap{Node: mixID, Producer: synth.PortOut}, nil
}

func oscillatorTable(engine *synth.Engine, opts options) (*synth.Wavetable, error) {
	if opts.cycle == "" {
		return builtinWave(engine, opts.wave)
	}
	cycle, err := loadCycle(opts.cycle)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		log.Printf("Cycle: %s (%d frames)", opts.cycle, len(cycle))
	}
	return engine.NewWavetable(cycle)
}

func morphOscillator(engine *synth.Engine, opts options) (*synth.MorphOscillatorNode, error) {
	var bank []*synth.Wavetable
	for _, name := range []string{"saw", "square", "triangle"} {
		table, err := builtinWave(engine, name)
		if err != nil {
			return nil, err
		}
		bank = append(bank, table)
	}
	osc := synth.NewMorphOscillatorNode(bank)
	osc.SetDetune(float32(opts.detune))
	osc.SetBreadth(float32(opts.breadth))
	osc.SetPan(float32(opts.pan))
	osc.SetWavetableSpread(float32(opts.breadth))
	osc.SetNote(opts.note)
	return osc, nil
}
