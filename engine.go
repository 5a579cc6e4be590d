package synth

import (
	"fmt"

	"github.com/tphakala/go-audio-synth/internal/pipeline"
	"github.com/tphakala/go-audio-synth/internal/simdops"
)

// Tap selects a producer of a node as an engine output channel.
type Tap struct {
	Node     NodeID
	Producer Producer
}

// Engine drives a graph from an audio callback. Every tick of the graph
// produces BufferSize frames; Render hands them out in whatever chunk
// sizes the caller asks for and keeps the remainder for the next call.
type Engine struct {
	config Config
	graph  *Graph
	ops    *simdops.Ops[float32]

	left, right Node
	leftTap     Producer
	rightTap    Producer

	// Interleaved frames of the current tick and the read position in frames.
	block    [stereoChannels * blockFrames]float32
	position int
}

// NewEngine creates an engine with an empty graph.
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		config:   config,
		graph:    pipeline.New(),
		ops:      simdops.Float32Ops(),
		position: blockFrames,
	}, nil
}

// SampleRate returns the output sample rate.
func (e *Engine) SampleRate() float64 { return e.config.SampleRate }

// Graph returns the graph the engine renders.
func (e *Engine) Graph() *Graph { return e.graph }

// SetOutput routes the left and right output channels. Both may name the
// same producer to duplicate a mono signal.
func (e *Engine) SetOutput(left, right Tap) error {
	l, err := e.resolve(left)
	if err != nil {
		return err
	}
	r, err := e.resolve(right)
	if err != nil {
		return err
	}
	e.left, e.leftTap = l, left.Producer
	e.right, e.rightTap = r, right.Producer
	return nil
}

// Render fills dst with interleaved stereo frames. A trailing odd sample is
// set to zero. Without an output the engine renders silence and does not
// tick the graph.
func (e *Engine) Render(dst []float32) {
	for len(dst) >= stereoChannels {
		if e.position == blockFrames {
			e.tick()
		}
		frames := min(blockFrames-e.position, len(dst)/stereoChannels)
		start := e.position * stereoChannels
		n := copy(dst, e.block[start:start+frames*stereoChannels])
		dst = dst[n:]
		e.position += frames
	}
	clear(dst)
}

// RenderMono fills dst with the left channel only.
func (e *Engine) RenderMono(dst []float32) {
	for len(dst) > 0 {
		if e.position == blockFrames {
			e.tick()
		}
		frames := min(blockFrames-e.position, len(dst))
		for i := range frames {
			dst[i] = e.block[(e.position+i)*stereoChannels]
		}
		dst = dst[frames:]
		e.position += frames
	}
}

func (e *Engine) tick() {
	e.position = 0
	if e.left == nil {
		clear(e.block[:])
		return
	}
	e.graph.Tick()
	e.ops.Interleave2(e.block[:], e.left.Read(e.leftTap)[:], e.right.Read(e.rightTap)[:])
}

func (e *Engine) resolve(t Tap) (Node, error) {
	if _, err := e.graph.Read(t.Node, t.Producer); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTap, err)
	}
	n, err := e.graph.Node(t.Node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTap, err)
	}
	return n, nil
}
