// Command synth-play plays a unison wavetable oscillator through a
// low-pass filter on the default audio device, driven from the keyboard.
//
// Usage:
//
//	synth-play
//	synth-play -wave square -voices 7 -detune 0.3
//
// Keys a w s e d f t g y h u j k play a chromatic octave. z and x shift the
// octave, [ and ] move the cutoff, - and = change the detune, comma and
// period change the voice count, space silences and q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ebitengine/oto/v3"
	"golang.org/x/term"

	synth "github.com/tphakala/go-audio-synth"
)

type options struct {
	sampleRate int
	wave       string
	voices     int
	detune     float64
	cutoff     float64
	bufferMs   int
	verbose    bool
}

var errNotTerminal = errors.New("stdin is not a terminal")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var opts options
	flag.IntVar(&opts.sampleRate, "rate", defaultSampleRate, "Output sample rate in Hz")
	flag.StringVar(&opts.wave, "wave", defaultWave, "Waveform: saw, sine, square, triangle")
	flag.IntVar(&opts.voices, "voices", defaultVoices, "Unison voices (1-7)")
	flag.Float64Var(&opts.detune, "detune", defaultDetune, "Detune of the outer voices in semitones")
	flag.Float64Var(&opts.cutoff, "cutoff", defaultCutoff, "Initial low-pass cutoff in Hz")
	flag.IntVar(&opts.bufferMs, "buffer", defaultBufferMs, "Device buffer in milliseconds")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	flag.Parse()

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	engine, err := synth.NewEngine(synth.Config{SampleRate: float64(opts.sampleRate)})
	if err != nil {
		return err
	}
	ctrl, err := buildPatch(engine, opts)
	if err != nil {
		return err
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.sampleRate,
		ChannelCount: stereoChannels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(opts.bufferMs) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(newStream(engine))
	defer player.Close() //nolint:errcheck // nothing to report at exit
	player.Play()

	if opts.verbose {
		log.Printf("Playing at %d Hz, buffer %dms", opts.sampleRate, opts.bufferMs)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	fmt.Print("a-k play, z/x octave, [/] cutoff, -/= detune, ,/. voices, space mute, q quit\r\n")
	keys := readKeys(ctx, os.Stdin)
	for {
		fmt.Printf("\r%s", ctrl.status())
		select {
		case <-ctx.Done():
			fmt.Print("\r\n")
			return nil
		case key, ok := <-keys:
			if !ok || !ctrl.handle(key) {
				fmt.Print("\r\n")
				return nil
			}
		}
	}
}

// buildPatch wires an oscillator into a low-pass filter feeding both
// outputs and returns the controller for it.
func buildPatch(engine *synth.Engine, opts options) (*controller, error) {
	table, err := wave(engine, opts.wave)
	if err != nil {
		return nil, err
	}

	g := engine.Graph()
	osc := synth.NewOscillatorNode(table)
	lp := synth.NewFilterNode(engine.SampleRate(), synth.LowPass)
	oscID := g.AddNode(osc)
	lpID := g.AddNode(lp)
	if err := g.AddEdge(oscID, synth.PortOut, lpID, synth.PortIn); err != nil {
		return nil, err
	}
	out := synth.Tap{Node: lpID, Producer: synth.PortOut}
	if err := engine.SetOutput(out, out); err != nil {
		return nil, err
	}

	opts.cutoff = min(max(opts.cutoff, minCutoff), synth.MaxCutoff(engine.SampleRate()))
	return newController(osc, lp, engine.SampleRate(), opts), nil
}

func wave(engine *synth.Engine, name string) (*synth.Wavetable, error) {
	switch strings.ToLower(name) {
	case "saw":
		return engine.NewSaw()
	case "sine":
		return engine.NewSine()
	case "square":
		return engine.NewSquare()
	case "triangle":
		return engine.NewTriangle()
	default:
		return nil, fmt.Errorf("unknown waveform %q (want saw, sine, square or triangle)", name)
	}
}
