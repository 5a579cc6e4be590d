package main

import (
	"encoding/binary"
	"math"

	synth "github.com/tphakala/go-audio-synth"
)

// stream adapts an Engine to the io.Reader oto pulls float32 frames from.
// Read runs on the audio goroutine; parameter changes reach the graph
// through the nodes' setters, so Read takes no lock.
type stream struct {
	engine *synth.Engine
	frames []float32
}

func newStream(engine *synth.Engine) *stream {
	return &stream{engine: engine}
}

// Read fills p with whole interleaved stereo frames. A partial trailing
// frame is left for the next call.
func (s *stream) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame * stereoChannels
	if cap(s.frames) < n {
		s.frames = make([]float32, n)
	}
	frames := s.frames[:n]
	s.engine.Render(frames)
	for i, v := range frames {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}
	return n * bytesPerSample, nil
}
