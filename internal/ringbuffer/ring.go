// Package ringbuffer implements the fixed-capacity circular sample store that
// backs the delay-based filters.
package ringbuffer

import "fmt"

// RingBuffer is a circular buffer of samples addressed relative to the write cursor.
//
// Unlike a FIFO it never runs empty or full: Write always overwrites the oldest
// slot and Peek reads any of the last Capacity() writes. It is owned by a single
// filter and is not safe for concurrent use.
type RingBuffer struct {
	data   []float32
	cursor int
}

// New creates a zero-filled ring buffer holding capacity samples.
func New(capacity int) *RingBuffer {
	if capacity < 1 {
		panic(fmt.Sprintf("ringbuffer: capacity must be at least 1, got %d", capacity))
	}
	return &RingBuffer{data: make([]float32, capacity)}
}

// Write stores value at the cursor and advances it.
func (b *RingBuffer) Write(value float32) {
	b.data[b.cursor] = value
	b.cursor++
	if b.cursor == len(b.data) {
		b.cursor = 0
	}
}

// Peek returns a previously written sample. offset 0 is the latest write,
// -1 the one before it, down to -(Capacity()-1) for the oldest retained sample.
// Positive offsets read past the write point and wrap onto old data.
func (b *RingBuffer) Peek(offset int) float32 {
	n := len(b.data)
	i := (b.cursor + offset - 1) % n
	if i < 0 {
		i += n
	}
	return b.data[i]
}

// Capacity returns the number of samples retained.
func (b *RingBuffer) Capacity() int {
	return len(b.data)
}

// Reset zeroes the contents and rewinds the cursor.
func (b *RingBuffer) Reset() {
	clear(b.data)
	b.cursor = 0
}
