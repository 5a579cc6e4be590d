package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	synth "github.com/tphakala/go-audio-synth"
)

func newTestEngine(t *testing.T) *synth.Engine {
	t.Helper()
	e, err := synth.NewEngine(synth.Config{SampleRate: synth.RateCD})
	require.NoError(t, err)
	return e
}

func defaultOptions() options {
	return options{
		sampleRate: defaultSampleRate,
		seconds:    defaultSeconds,
		note:       defaultNote,
		voices:     defaultVoices,
		detune:     defaultDetune,
		cutoff:     defaultCutoff,
		qFactor:    defaultQFactor,
		wave:       defaultWave,
		breadth:    defaultBreadth,
		pan:        defaultPan,
		feedback:   defaultFeedback,
		delayMs:    defaultDelayMs,
		bitDepth:   defaultBitDepth,
	}
}

func TestBuiltinWave(t *testing.T) {
	e := newTestEngine(t)
	for _, name := range []string{"saw", "sine", "square", "triangle", "pulse", "SAW"} {
		t.Run(name, func(t *testing.T) {
			table, err := builtinWave(e, name)
			require.NoError(t, err)
			require.NotNil(t, table)
			assert.InDelta(t, synth.RateCD, table.SampleRate(), 0)
		})
	}
}

func TestBuiltinWave_Unknown(t *testing.T) {
	_, err := builtinWave(newTestEngine(t), "noise")
	require.ErrorIs(t, err, errUnknownWave)
	assert.Contains(t, err.Error(), "noise")
}

func TestLoadCycle_FileNotFound(t *testing.T) {
	_, err := loadCycle("/nonexistent/cycle.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open cycle file")
}

func TestLoadCycle_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := loadCycle(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestLoadCycle_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.wav")
	w, err := createWAV(path, synth.RateCD, bitDepth16)
	require.NoError(t, err)
	// Stereo frames: the left channel carries the cycle.
	require.NoError(t, w.Write([]float32{0, 0.9, 0.5, 0.9, 0, 0.9, -0.5, 0.9}))
	require.NoError(t, w.Close())

	cycle, err := loadCycle(path)
	require.NoError(t, err)
	require.Len(t, cycle, 4)
	want := []float32{0, 0.5, 0, -0.5}
	for i := range want {
		assert.InDelta(t, want[i], cycle[i], 1e-4, "sample %d", i)
	}
}

func TestLoadCycle_TooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc := wav.NewEncoder(f, synth.RateCD, bitDepth16, 1, pcmFormat)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: synth.RateCD},
		Data:           []int{1000},
		SourceBitDepth: bitDepth16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	_, err = loadCycle(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 2")
}

func TestToPCM(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		in       []float32
		want     []int
	}{
		{"16-bit", bitDepth16, []float32{0, 1, -1, 0.5}, []int{0, 32767, -32767, 16383}},
		{"16-bit clamps", bitDepth16, []float32{2, -3}, []int{32767, -32767}},
		{"24-bit", bitDepth24, []float32{1, -1}, []int{8388607, -8388607}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toPCM(tt.in, tt.bitDepth))
		})
	}
}

func TestCreateWAV_InvalidBitDepth(t *testing.T) {
	_, err := createWAV(filepath.Join(t.TempDir(), "out.wav"), synth.RateCD, 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bit depth")
}

func TestCreateWAV_InvalidDirectory(t *testing.T) {
	_, err := createWAV("/nonexistent/dir/out.wav", synth.RateCD, bitDepth16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*options)
		wantErr string
	}{
		{"defaults", func(*options) {}, ""},
		{"zero seconds", func(o *options) { o.seconds = 0 }, "seconds"},
		{"breadth above 1", func(o *options) { o.breadth = 1.5 }, "breadth"},
		{"pan below -1", func(o *options) { o.pan = -2 }, "pan"},
		{"cutoff above nyquist", func(o *options) { o.cutoff = 30000 }, "cutoff"},
		{"cutoff above filter limit", func(o *options) { o.cutoff = 12000 }, "cutoff must be in [0, 8000]"},
		{"cutoff at filter limit", func(o *options) { o.cutoff = 8000 }, ""},
		{"zero q", func(o *options) { o.qFactor = 0 }, "q must"},
		{"unstable feedback", func(o *options) { o.feedback = 1 }, "feedback"},
		{"delay too short", func(o *options) { o.feedback = 0.5; o.delayMs = 0.001 }, "shorter than one frame"},
		{"delay too long", func(o *options) { o.delayMs = 1500 }, "at most"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.modify(&opts)
			err := opts.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRender_WritesFrames(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*options)
	}{
		{"unison", func(*options) {}},
		{"morph", func(o *options) { o.morph = true }},
		{"delay", func(o *options) { o.feedback = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.sampleRate = synth.RateCD
			opts.seconds = 0.1
			tt.modify(&opts)

			e := newTestEngine(t)
			require.NoError(t, buildPatch(e, opts))

			path := filepath.Join(t.TempDir(), "out.wav")
			frames, err := render(e, path, opts)
			require.NoError(t, err)
			assert.Equal(t, 4410, frames)

			f, err := os.Open(path)
			require.NoError(t, err)
			defer func() { _ = f.Close() }()
			d := wav.NewDecoder(f)
			buf, err := d.FullPCMBuffer()
			require.NoError(t, err)
			assert.Equal(t, stereoChannels, buf.Format.NumChannels)
			assert.Len(t, buf.Data, frames*stereoChannels)

			peak := 0
			for _, v := range buf.Data {
				peak = max(peak, v, -v)
			}
			assert.Positive(t, peak, "render should not be silent")
		})
	}
}
