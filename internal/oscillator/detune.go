package oscillator

import "fmt"

// DistributeDetune spreads voices evenly over [-detune, detune] semitones
// and writes the offsets to dst[:voices]. Remaining entries are zeroed.
//
// An odd count keeps voice 0 at zero and assigns symmetric pairs from voice
// 1 on; an even count assigns pairs from voice 0. Pairs move outwards and
// alternate their sign order, (+,-) then (-,+), so five voices at one
// semitone give [0, 0.5, -0.5, -1, 1].
//
// voices must be in [1, MaxVoices] and no larger than len(dst).
func DistributeDetune(dst []float32, voices int, detune float32) {
	if voices < 1 || voices > MaxVoices || voices > len(dst) {
		panic(fmt.Sprintf("oscillator: voice count must be in [1, %d] and fit %d slots, got %d",
			MaxVoices, len(dst), voices))
	}
	clear(dst)
	if voices == 1 {
		return
	}

	first, offset := 1, 0
	if voices%2 == 0 {
		first, offset = 0, 1
	}
	span := float32(voices - 1)
	for pair, i := 1, first; i < voices; pair, i = pair+1, i+2 {
		spread := detune * float32(2*pair-offset) / span
		if pair%2 == 1 {
			dst[i], dst[i+1] = spread, -spread
		} else {
			dst[i], dst[i+1] = -spread, spread
		}
	}
}
