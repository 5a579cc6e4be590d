package mathutil

import (
	"fmt"
	"math"
)

// LinearCrossfade blends a into b. x must be in [0, 1]: 0 returns a, 1 returns b.
//
// An out-of-range mix is a programming error and panics.
func LinearCrossfade(a, b, x float32) float32 {
	checkMix(x)
	return a*(1-x) + b*x
}

// LogCrossfade blends a into b on a logarithmic scale, which keeps perceived
// steps even when fading between frequencies or gains. Both values must be
// positive unless they are equal, in which case the value is returned directly.
func LogCrossfade(a, b, x float32) float32 {
	checkMix(x)
	if a == b {
		return a
	}
	if a <= 0 || b <= 0 {
		panic(fmt.Sprintf("mathutil: logarithmic cross-fade needs positive values, got %v and %v", a, b))
	}
	switch x {
	case 0:
		return a
	case 1:
		return b
	}
	la := math.Log(float64(a))
	lb := math.Log(float64(b))
	return float32(math.Exp(la + (lb-la)*float64(x)))
}

func checkMix(x float32) {
	if !(x >= 0 && x <= 1) {
		panic(fmt.Sprintf("mathutil: cross-fade mix must be in [0, 1], got %v", x))
	}
}
