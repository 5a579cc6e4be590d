package mathutil

// Pitch constants
const (
	semitonesPerOctave = 12.0
	referenceNote      = 69.0  // MIDI note number of A4
	referenceFrequency = 440.0 // A4 in Hz
)

// Bessel series constants
const (
	besselMaxTerms  = 500   // Upper bound on series terms
	besselTolerance = 1e-17 // Relative size of the last term before stopping
)

// Kaiser β formula coefficients (Kaiser & Schafer empirical fit)
const (
	kaiserAttHigh          = 50.0
	kaiserAttMedium        = 21.0
	kaiserBetaHighCoeff    = 0.1102
	kaiserBetaHighOffset   = 8.7
	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)
