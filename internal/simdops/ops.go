// Package simdops provides generic SIMD operations for float32 and float64 sample slices.
// DSP code written against Ops[F] runs on either precision without duplication:
// the audio path uses float32 while analysis uses float64.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// AddScaled accumulates a scaled slice: dst[i] += alpha * s[i]
	AddScaled func(dst []F, alpha F, s []F)

	// Clamp limits each element to [lo, hi]: dst[i] = min(max(a[i], lo), hi)
	Clamp func(dst, a []F, lo, hi F)

	// Max returns the largest element. a must not be empty.
	Max func(a []F) F

	// Min returns the smallest element. a must not be empty.
	Min func(a []F) F
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Interleave2:      f32.Interleave2,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
		AddScaled:        f32.AddScaled,
		Clamp:            f32.Clamp,
		Max:              f32.Max,
		Min:              f32.Min,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Interleave2:      f64.Interleave2,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
		AddScaled:        f64.AddScaled,
		Clamp:            f64.Clamp,
		Max:              f64.Max,
		Min:              f64.Min,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float32Ops returns the float32 SIMD operations used on the audio path.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 SIMD operations used by analysis code.
func Float64Ops() *Ops[float64] {
	return &ops64
}

// Energy returns Σ a[i]².
func Energy[F Float](a []F) F {
	if len(a) == 0 {
		return 0
	}
	return For[F]().DotProductUnsafe(a, a)
}

// Peak returns max |a[i]|, or 0 for an empty slice.
func Peak[F Float](a []F) F {
	if len(a) == 0 {
		return 0
	}
	ops := For[F]()
	return max(ops.Max(a), -ops.Min(a))
}
