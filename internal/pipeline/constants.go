package pipeline

// BufferSize is the number of frames every node produces per tick.
const BufferSize = 32

// Initial capacities for graph bookkeeping
const (
	defaultNodeCapacity = 16
	defaultEdgeCapacity = 32
)
