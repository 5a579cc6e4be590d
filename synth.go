package synth

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-audio-synth/internal/filter"
	"github.com/tphakala/go-audio-synth/internal/pipeline"
	"github.com/tphakala/go-audio-synth/internal/wavetable"
)

// Config holds engine configuration.
type Config struct {
	// SampleRate is the output sample rate in Hz.
	SampleRate float64
}

// Common errors returned by the engine.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid synth configuration")

	// ErrInvalidTap indicates an output tap that names no existing producer.
	ErrInvalidTap = errors.New("invalid output tap")
)

// Graph construction errors, re-exported from the graph package.
var (
	ErrUnknownNode  = pipeline.ErrUnknownNode
	ErrUnknownPort  = pipeline.ErrUnknownPort
	ErrSlotOccupied = pipeline.ErrSlotOccupied
	ErrCycle        = pipeline.ErrCycle
	ErrNoEdge       = pipeline.ErrNoEdge
)

// Wavetable construction errors.
var (
	ErrInvalidSource     = wavetable.ErrInvalidSource
	ErrInvalidSampleRate = wavetable.ErrInvalidSampleRate
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !(c.SampleRate >= minSampleRate && c.SampleRate <= maxSampleRate) {
		return fmt.Errorf("%w: sample rate must be in [%d, %d] Hz, got %v",
			ErrInvalidConfig, minSampleRate, maxSampleRate, c.SampleRate)
	}
	return nil
}

// Types shared with the graph and DSP packages.
type (
	// Graph owns nodes and the edges between them.
	Graph = pipeline.Graph

	// Node is a unit of DSP work scheduled by a Graph.
	Node = pipeline.Node

	// NodeID is a handle returned by Graph.AddNode.
	NodeID = pipeline.NodeID

	// Consumer names an input slot of a node.
	Consumer = pipeline.Consumer

	// Producer names an output slot of a node.
	Producer = pipeline.Producer

	// Buffer is one tick's worth of mono samples.
	Buffer = pipeline.Buffer

	// Param is a lock-free single-writer, single-reader float32 cell.
	Param = pipeline.Param

	// Wavetable is an immutable band-limited waveform.
	Wavetable = wavetable.Wavetable

	// FilterMode selects the response of a FilterNode.
	FilterMode = filter.Mode
)

// BufferSize is the number of frames a node produces per tick.
const BufferSize = pipeline.BufferSize

// Filter modes.
const (
	LowPass    = filter.LowPass
	HighPass   = filter.HighPass
	BandPass   = filter.BandPass
	BandReject = filter.BandReject
)

// NewGraph creates an empty graph, for use without an Engine.
func NewGraph() *Graph { return pipeline.New() }

// NewParam creates a parameter cell holding initial.
func NewParam(initial float32) *Param { return pipeline.NewParam(initial) }
