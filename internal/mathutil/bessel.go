// Package mathutil provides the small numerical helpers shared by the DSP
// packages: cross-fades, pitch conversion and window-function support.
package mathutil

import "math"

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// It is used for Kaiser window generation in spectral analysis.
//
// The power series I₀(x) = Σ ((x/2)^k / k!)² converges for every x; terms are
// accumulated until they stop contributing to the sum.
func BesselI0(x float64) float64 {
	half := math.Abs(x) / 2
	sum := 1.0
	term := 1.0
	for k := 1; k < besselMaxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*besselTolerance {
			break
		}
	}
	return sum
}

// KaiserBeta returns the Kaiser window β giving approximately the requested
// sidelobe attenuation in dB.
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*d
	default:
		return 0
	}
}
