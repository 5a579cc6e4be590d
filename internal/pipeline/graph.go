package pipeline

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned while building a graph.
var (
	// ErrUnknownNode indicates a NodeID that was not returned by AddNode.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownPort indicates a label the node does not declare.
	ErrUnknownPort = errors.New("unknown port")

	// ErrSlotOccupied indicates a consumer slot that already has an edge.
	ErrSlotOccupied = errors.New("consumer slot occupied")

	// ErrCycle indicates an edge that would close a cycle.
	ErrCycle = errors.New("edge creates a cycle")

	// ErrNoEdge indicates a consumer slot without an edge.
	ErrNoEdge = errors.New("no edge into consumer slot")
)

// NodeID is an opaque handle to a node owned by a Graph.
type NodeID int

// Edge connects a producer of one node to a consumer of another.
type Edge struct {
	From     NodeID
	Producer Producer
	To       NodeID
	Consumer Consumer
}

// String formats the edge for diagnostics.
func (e Edge) String() string {
	return fmt.Sprintf("%d.%s -> %d.%s", e.From, e.Producer, e.To, e.Consumer)
}

// Graph owns a set of nodes and the edges between them.
// It is not safe for concurrent use.
type Graph struct {
	nodes []Node
	edges []Edge

	// Derived from edges on every change.
	order   []NodeID
	inbound [][]Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make([]Node, 0, defaultNodeCapacity),
		edges: make([]Edge, 0, defaultEdgeCapacity),
	}
}

// AddNode adds n to the graph and returns its handle.
func (g *Graph) AddNode(n Node) NodeID {
	if n == nil {
		panic("pipeline: nil node")
	}
	g.nodes = append(g.nodes, n)
	g.rebuild()
	return NodeID(len(g.nodes) - 1)
}

// Node returns the node behind id.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return g.nodes[id], nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Edges returns a copy of the edge set.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Order returns a copy of the current tick order.
func (g *Graph) Order() []NodeID { return slices.Clone(g.order) }

// AddEdge routes producer p of node from into consumer c of node to.
// A consumer slot accepts at most one edge; fan-in needs a mixing node.
func (g *Graph) AddEdge(from NodeID, p Producer, to NodeID, c Consumer) error {
	e := Edge{From: from, Producer: p, To: to, Consumer: c}
	if !g.valid(from) {
		return fmt.Errorf("%w: %d in edge %s", ErrUnknownNode, from, e)
	}
	if !g.valid(to) {
		return fmt.Errorf("%w: %d in edge %s", ErrUnknownNode, to, e)
	}
	if !slices.Contains(g.nodes[from].Producers(), p) {
		return fmt.Errorf("%w: node %d has no producer %q", ErrUnknownPort, from, p)
	}
	if !slices.Contains(g.nodes[to].Consumers(), c) {
		return fmt.Errorf("%w: node %d has no consumer %q", ErrUnknownPort, to, c)
	}
	if i := g.findEdge(to, c); i >= 0 {
		return fmt.Errorf("%w: %s already fed by %s", ErrSlotOccupied, e, g.edges[i])
	}
	if from == to || g.reaches(to, from) {
		return fmt.Errorf("%w: %s", ErrCycle, e)
	}

	g.edges = append(g.edges, e)
	g.rebuild()
	return nil
}

// RemoveEdge disconnects whatever feeds consumer c of node to.
func (g *Graph) RemoveEdge(to NodeID, c Consumer) error {
	if !g.valid(to) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, to)
	}
	i := g.findEdge(to, c)
	if i < 0 {
		return fmt.Errorf("%w: %d.%s", ErrNoEdge, to, c)
	}
	g.edges = slices.Delete(g.edges, i, i+1)
	g.rebuild()
	return nil
}

// Tick runs one scheduling round: every node, in topological order,
// receives its inbound buffers and ticks once.
func (g *Graph) Tick() {
	for _, id := range g.order {
		n := g.nodes[id]
		for _, e := range g.inbound[id] {
			n.Write(e.Consumer, g.nodes[e.From].Read(e.Producer))
		}
		n.Tick()
	}
}

// Read returns a copy of producer p of node id as of the last Tick.
func (g *Graph) Read(id NodeID, p Producer) (Buffer, error) {
	if !g.valid(id) {
		return Buffer{}, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if !slices.Contains(g.nodes[id].Producers(), p) {
		return Buffer{}, fmt.Errorf("%w: node %d has no producer %q", ErrUnknownPort, id, p)
	}
	return *g.nodes[id].Read(p), nil
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph) findEdge(to NodeID, c Consumer) int {
	return slices.IndexFunc(g.edges, func(e Edge) bool {
		return e.To == to && e.Consumer == c
	})
}

// reaches reports whether a path of edges leads from src to dst.
func (g *Graph) reaches(src, dst NodeID) bool {
	seen := make([]bool, len(g.nodes))
	stack := []NodeID{src}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == dst {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, e := range g.edges {
			if e.From == id && !seen[e.To] {
				stack = append(stack, e.To)
			}
		}
	}
	return false
}

// rebuild recomputes the tick order with Kahn's algorithm, breaking ties
// by insertion order, and groups edges by their consuming node.
func (g *Graph) rebuild() {
	n := len(g.nodes)
	indegree := make([]int, n)
	g.inbound = make([][]Edge, n)
	for _, e := range g.edges {
		indegree[e.To]++
		g.inbound[e.To] = append(g.inbound[e.To], e)
	}

	g.order = make([]NodeID, 0, n)
	ready := make([]NodeID, 0, n)
	for id := range n {
		if indegree[id] == 0 {
			ready = append(ready, NodeID(id))
		}
	}
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		g.order = append(g.order, id)
		for _, e := range g.edges {
			if e.From != id {
				continue
			}
			indegree[e.To]--
			if indegree[e.To] == 0 {
				ready = insertSorted(ready, e.To)
			}
		}
	}
}

func insertSorted(ids []NodeID, id NodeID) []NodeID {
	i, _ := slices.BinarySearch(ids, id)
	return slices.Insert(ids, i, id)
}
