package oscillator

import "fmt"

// BreadthTable holds the per-voice amplitudes of Osc2 for evenly spaced
// breadth values. Row 0 plays the centre voice alone. The neighbours fade in
// over the first ten rows, the outer voices over the next twenty, and the
// last five pull the centre back so that the outer voices dominate.
var BreadthTable = [36][MorphVoices]float32{
	{0, 0, 1, 0, 0},
	{0, 0.1, 1, 0.1, 0},
	{0, 0.2, 1, 0.2, 0},
	{0, 0.3, 1, 0.3, 0},
	{0, 0.4, 1, 0.4, 0},
	{0, 0.5, 1, 0.5, 0},
	{0, 0.6, 1, 0.6, 0},
	{0, 0.7, 1, 0.7, 0},
	{0, 0.8, 1, 0.8, 0},
	{0, 0.9, 1, 0.9, 0},
	{0, 1, 1, 1, 0},
	{0.05, 1, 1, 1, 0.05},
	{0.1, 1, 1, 1, 0.1},
	{0.15, 1, 1, 1, 0.15},
	{0.2, 1, 1, 1, 0.2},
	{0.25, 1, 1, 1, 0.25},
	{0.3, 1, 1, 1, 0.3},
	{0.35, 1, 1, 1, 0.35},
	{0.4, 1, 1, 1, 0.4},
	{0.45, 1, 1, 1, 0.45},
	{0.5, 1, 1, 1, 0.5},
	{0.55, 1, 1, 1, 0.55},
	{0.6, 1, 1, 1, 0.6},
	{0.65, 1, 1, 1, 0.65},
	{0.7, 1, 1, 1, 0.7},
	{0.75, 1, 1, 1, 0.75},
	{0.8, 1, 1, 1, 0.8},
	{0.85, 1, 1, 1, 0.85},
	{0.9, 1, 1, 1, 0.9},
	{0.95, 1, 1, 1, 0.95},
	{1, 1, 1, 1, 1},
	{1, 1, 0.95, 1, 1},
	{1, 1, 0.9, 1, 1},
	{1, 1, 0.85, 1, 1},
	{1, 1, 0.8, 1, 1},
	{1, 1, 0.75, 1, 1},
}

// Breadth returns the voice amplitudes for breadth in [0, 1], interpolated
// between the two nearest rows of BreadthTable.
func Breadth(breadth float32) [MorphVoices]float32 {
	if !(breadth >= 0 && breadth <= 1) {
		panic(fmt.Sprintf("oscillator: breadth must be in [0, 1], got %v", breadth))
	}
	last := len(BreadthTable) - 1
	position := breadth * float32(last)
	row := int(position)
	if row >= last {
		return BreadthTable[last]
	}
	frac := position - float32(row)
	lo, hi := BreadthTable[row], BreadthTable[row+1]
	var out [MorphVoices]float32
	for i := range out {
		out[i] = lo[i] + (hi[i]-lo[i])*frac
	}
	return out
}
