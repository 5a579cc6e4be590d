package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	synth "github.com/tphakala/go-audio-synth"
	"github.com/tphakala/go-audio-synth/internal/simdops"
	"github.com/tphakala/go-audio-synth/internal/waveshape"
)

var errUnknownWave = errors.New("unknown waveform")

// builtinWave builds one of the named wavetables at the engine's rate.
func builtinWave(e *synth.Engine, name string) (*synth.Wavetable, error) {
	switch strings.ToLower(name) {
	case "saw":
		return e.NewSaw()
	case "sine":
		return e.NewSine()
	case "square":
		return e.NewSquare()
	case "triangle":
		return e.NewTriangle()
	case "pulse":
		return e.NewWavetable(waveshape.Pulse(synth.SourceLength, synth.SourceLength/8, 0.25))
	default:
		return nil, fmt.Errorf("%w: %q (want saw, sine, square, triangle or pulse)", errUnknownWave, name)
	}
}

// loadCycle reads the first channel of a WAV file holding a single cycle.
func loadCycle(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cycle file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	channels := max(buf.Format.NumChannels, 1)
	frames := len(buf.Data) / channels
	if frames < 2 {
		return nil, fmt.Errorf("cycle in %s has %d frames, need at least 2", path, frames)
	}
	scale := float32(1)
	if buf.SourceBitDepth > 1 {
		scale = 1 / float32(int(1)<<(buf.SourceBitDepth-1))
	}
	cycle := make([]float32, frames)
	for i := range cycle {
		cycle[i] = float32(buf.Data[i*channels]) * scale
	}
	return cycle, nil
}

// validate rejects flag values the synth nodes would panic on.
func (o *options) validate() error {
	switch {
	case o.seconds <= 0:
		return fmt.Errorf("seconds must be positive, got %g", o.seconds)
	case o.breadth < 0 || o.breadth > 1:
		return fmt.Errorf("breadth must be in [0, 1], got %g", o.breadth)
	case o.pan < -1 || o.pan > 1:
		return fmt.Errorf("pan must be in [-1, 1], got %g", o.pan)
	case o.cutoff < 0 || o.cutoff > synth.MaxCutoff(float64(o.sampleRate)):
		return fmt.Errorf("cutoff must be in [0, %g], got %g", synth.MaxCutoff(float64(o.sampleRate)), o.cutoff)
	case o.qFactor <= 0:
		return fmt.Errorf("q must be positive, got %g", o.qFactor)
	case o.feedback < 0 || o.feedback >= 1:
		return fmt.Errorf("feedback must be in [0, 1), got %g", o.feedback)
	case o.delayMs*float64(o.sampleRate) < msPerSecond:
		return fmt.Errorf("delay of %gms is shorter than one frame", o.delayMs)
	case o.delayMs > maxDelayMs:
		return fmt.Errorf("delay must be at most %gms, got %g", maxDelayMs, o.delayMs)
	}
	return nil
}

// toPCM converts interleaved float samples to clamped integers of bitDepth.
func toPCM(samples []float32, bitDepth int) []int {
	scale := maxInt16
	if bitDepth == bitDepth24 {
		scale = maxInt24
	}
	clamped := make([]float32, len(samples))
	simdops.Float32Ops().Clamp(clamped, samples, -1, 1)
	out := make([]int, len(samples))
	for i, v := range clamped {
		out[i] = int(float64(v) * scale)
	}
	return out
}

// wavWriter streams interleaved stereo float frames into a PCM WAV file.
type wavWriter struct {
	file     *os.File
	encoder  *wav.Encoder
	buffer   *audio.IntBuffer
	bitDepth int
}

func createWAV(path string, sampleRate, bitDepth int) (*wavWriter, error) {
	if bitDepth != bitDepth16 && bitDepth != bitDepth24 {
		return nil, fmt.Errorf("unsupported bit depth %d (want 16 or 24)", bitDepth)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &wavWriter{
		file:    f,
		encoder: wav.NewEncoder(f, sampleRate, bitDepth, stereoChannels, pcmFormat),
		buffer: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: stereoChannels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
		bitDepth: bitDepth,
	}, nil
}

// Write appends interleaved stereo frames.
func (w *wavWriter) Write(frames []float32) error {
	w.buffer.Data = toPCM(frames, w.bitDepth)
	if err := w.encoder.Write(w.buffer); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// Close finalizes the header and closes the file.
func (w *wavWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return w.file.Close()
}
