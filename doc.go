// Package synth provides band-limited wavetable synthesis in pure Go.
//
// Sound is produced by a graph of nodes. Oscillator nodes read wavetables
// that were low-passed at several cutoffs when they were built, so reading
// switches to a duller copy of the waveform as the pitch rises and
// harmonics above Nyquist never alias back into the audible range. Filter,
// delay and mixer nodes shape and combine the oscillator outputs.
//
// # Quick Start
//
//	engine, err := synth.NewEngine(synth.Config{SampleRate: synth.RateDAT})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	saw, err := engine.NewSaw()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	osc := synth.NewOscillatorNode(saw)
//	osc.SetVoices(5)
//	osc.SetDetune(0.2)
//
//	lp := synth.NewFilterNode(engine.SampleRate(), synth.LowPass)
//	lp.SetFrequency(2000)
//
//	g := engine.Graph()
//	src := g.AddNode(osc)
//	out := g.AddNode(lp)
//	if err := g.AddEdge(src, synth.PortOut, out, synth.PortIn); err != nil {
//	    log.Fatal(err)
//	}
//	tap := synth.Tap{Node: out, Producer: synth.PortOut}
//	if err := engine.SetOutput(tap, tap); err != nil {
//	    log.Fatal(err)
//	}
//
//	frames := make([]float32, 2*512) // interleaved stereo
//	engine.Render(frames)
//
// # Threading
//
// Render is meant to be called from the audio callback. Node setters may be
// called from one other goroutine at the same time: each parameter travels
// through a lock-free [Param] cell that the node polls once per tick.
// Building the graph must not overlap with Render.
//
// # Errors
//
// Construction and wiring return errors wrapping the package sentinels.
// Node setters panic on values outside their documented range, because the
// audio path has no way to report them.
package synth
