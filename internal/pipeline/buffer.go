package pipeline

// Buffer is one tick's worth of mono samples. Buffers are passed between
// nodes by pointer for the duration of a tick and must not be retained.
type Buffer [BufferSize]float32

// Clear zeroes the buffer.
func (b *Buffer) Clear() {
	*b = Buffer{}
}
