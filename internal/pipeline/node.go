// Package pipeline implements the dataflow graph that schedules DSP nodes.
//
// A Node declares a fixed set of input labels (consumers) and output labels
// (producers). A Graph owns the nodes and the edges between them and ticks
// every node once per round, producers before consumers, delivering each
// edge's buffer just before the consuming node ticks.
//
// Graph construction may fail and reports errors. Ticking never fails and
// does not allocate.
package pipeline

// Consumer names an input slot of a node.
type Consumer string

// Producer names an output slot of a node.
type Producer string

// Node is a unit of DSP work scheduled by a Graph.
type Node interface {
	// Consumers returns the node's input labels. The set must not change.
	Consumers() []Consumer

	// Producers returns the node's output labels. The set must not change.
	Producers() []Producer

	// Write stores buf into input slot c. The node must copy what it needs;
	// buf is only valid until the call returns.
	Write(c Consumer, buf *Buffer)

	// Read returns the contents of output slot p as of the last Tick.
	Read(p Producer) *Buffer

	// Tick advances the node by BufferSize frames, consuming the most
	// recently written inputs and recomputing every output.
	Tick()
}
