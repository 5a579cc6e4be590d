package synth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sourceNode replays a fixed sequence of buffers, then silence.
type sourceNode struct {
	frames []Buffer
	out    Buffer
	ticks  int
}

func (s *sourceNode) Consumers() []Consumer   { return nil }
func (s *sourceNode) Producers() []Producer   { return generatorOutputs }
func (s *sourceNode) Write(Consumer, *Buffer) {}
func (s *sourceNode) Read(Producer) *Buffer   { return &s.out }
func (s *sourceNode) Tick() {
	s.out = Buffer{}
	if s.ticks < len(s.frames) {
		s.out = s.frames[s.ticks]
	}
	s.ticks++
}

func newSource(samples ...float32) *sourceNode {
	s := &sourceNode{}
	for len(samples) > 0 {
		var b Buffer
		n := copy(b[:], samples)
		samples = samples[n:]
		s.frames = append(s.frames, b)
	}
	return s
}

func constantSource(v float32, ticks int) *sourceNode {
	s := &sourceNode{frames: make([]Buffer, ticks)}
	for i := range s.frames {
		for j := range s.frames[i] {
			s.frames[i][j] = v
		}
	}
	return s
}

func newTestEngine(t testing.TB) *Engine {
	t.Helper()
	e, err := NewEngine(Config{SampleRate: RateCD})
	require.NoError(t, err)
	return e
}

// sawPatch builds a detuned saw into a low-pass filter and routes it to
// both channels.
func sawPatch(t testing.TB) (*Engine, *OscillatorNode) {
	t.Helper()
	e := newTestEngine(t)
	saw, err := e.NewSaw()
	require.NoError(t, err)

	osc := NewOscillatorNode(saw)
	osc.SetVoices(3)
	osc.SetDetune(0.25)
	lp := NewFilterNode(e.SampleRate(), LowPass)
	lp.SetFrequency(3000)

	g := e.Graph()
	src := g.AddNode(osc)
	out := g.AddNode(lp)
	require.NoError(t, g.AddEdge(src, PortOut, out, PortIn))

	tap := Tap{Node: out, Producer: PortOut}
	require.NoError(t, e.SetOutput(tap, tap))
	return e, osc
}

// tickNode runs one node inside a graph fed by source and returns its output.
func tickNode(t *testing.T, n Node, source *sourceNode, ticks int) []float32 {
	t.Helper()
	g := NewGraph()
	src := g.AddNode(source)
	id := g.AddNode(n)
	require.NoError(t, g.AddEdge(src, PortOut, id, n.Consumers()[0]))

	var out []float32
	for range ticks {
		g.Tick()
		buf, err := g.Read(id, n.Producers()[0])
		require.NoError(t, err)
		out = append(out, buf[:]...)
	}
	return out
}
