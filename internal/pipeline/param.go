package pipeline

import (
	"math"
	"sync/atomic"
)

// Param hands a float32 from one writer goroutine to one reader goroutine
// without locks. The reader polls it once per tick and never blocks.
type Param struct {
	// Version in the high 32 bits, value bits in the low 32.
	packed atomic.Uint64

	writes uint32 // writer side
	seen   uint32 // reader side
}

// NewParam creates a cell holding initial. The first Poll reports no change.
func NewParam(initial float32) *Param {
	p := &Param{}
	p.packed.Store(uint64(math.Float32bits(initial)))
	return p
}

// Store publishes v. Only one goroutine may call Store.
func (p *Param) Store(v float32) {
	p.writes++
	p.packed.Store(uint64(p.writes)<<32 | uint64(math.Float32bits(v)))
}

// Load returns the latest value.
func (p *Param) Load() float32 {
	return math.Float32frombits(uint32(p.packed.Load()))
}

// Poll returns the latest value and whether a Store happened since the
// previous Poll. Only one goroutine may call Poll.
func (p *Param) Poll() (value float32, changed bool) {
	packed := p.packed.Load()
	version := uint32(packed >> 32)
	changed = version != p.seen
	p.seen = version
	return math.Float32frombits(uint32(packed)), changed
}
