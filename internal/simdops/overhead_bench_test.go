package simdops

import (
	"testing"

	"github.com/tphakala/simd/f32"
)

// BenchmarkDirectF32Scale measures a direct SIMD call on one sample buffer.
func BenchmarkDirectF32Scale(b *testing.B) {
	buf := make([]float32, 32)
	for i := range buf {
		buf[i] = float32(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		f32.Scale(buf, buf, 0.999)
	}
}

// BenchmarkIndirectF32Scale measures the same call through the Ops struct.
func BenchmarkIndirectF32Scale(b *testing.B) {
	ops := For[float32]()
	buf := make([]float32, 32)
	for i := range buf {
		buf[i] = float32(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(buf, buf, 0.999)
	}
}

// BenchmarkInterleave2 measures stereo interleaving of one block.
func BenchmarkInterleave2(b *testing.B) {
	ops := Float32Ops()
	left := make([]float32, 32)
	right := make([]float32, 32)
	dst := make([]float32, 64)

	b.ReportAllocs()
	for b.Loop() {
		ops.Interleave2(dst, left, right)
	}
}
