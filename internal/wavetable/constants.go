package wavetable

// Table geometry
const (
	// BaseLength is the number of samples in every band.
	BaseLength = 2048

	// Oversampling is the decimation factor from source to band.
	Oversampling = 4

	// SourceLength is the required length of the oversampled source cycle.
	SourceLength = BaseLength * Oversampling
)

// Band construction
const (
	// FilterPasses is the number of low-pass stages applied to each band.
	FilterPasses = 3

	// warmupCycles is how many times the cycle is fed through a filter
	// before its output is kept, so that the kept cycle is steady state.
	warmupCycles = 4

	// sourceHeadroom scales the source before filtering to keep the
	// state-variable filter's output clamp out of play.
	sourceHeadroom = 0.5

	// bandCount is the sine band plus one band per cutoff.
	bandCount = len(bandCutoffs) + 1

	// fullBand is the index of the least filtered band.
	fullBand = bandCount - 1
)

// bandCutoffs are the low-pass cutoffs of bands 1..6, in harmonics of the
// cycle. Band 0 is a pure sine.
var bandCutoffs = [...]float64{1, 8, 16, 32, 64, 128}

// thresholds are the frequency/Nyquist ratios at which reading moves from
// one band to the next more filtered one.
var thresholds = [...]float32{1.0 / 128, 1.0 / 64, 1.0 / 32, 1.0 / 16, 1.0 / 8, 1.0 / 4}
