// Package graph defines the directed labeled graph and hypergraph
// model shared by the simulation, bounded, and hypersim engines.
//
// A Graph is built incrementally through a Builder and then frozen:
// Freeze derives and caches adjacency indices and hands back an
// immutable *Graph. Engines never see a *Builder, only a frozen
// *Graph/*Hypergraph, so "no mutation during a run" is a type-level
// guarantee rather than a convention.
//
// Errors:
//
//	grerr.ErrDanglingEdge - Freeze found an edge endpoint with no matching node.
package graph

// ID identifies a node within a single Graph or Hypergraph. IDs are
// caller-supplied and need not be contiguous; the dense internal index
// derived from insertion order is an implementation detail, never
// exposed.
type ID = uint64

// Label is the label-equality capability a Node carries. Graphs that
// need no real labeling use UniformLabel; graphs with actual payloads
// inject StringLabel or TypedLabel at construction time.
type Label interface {
	Equal(other Label) bool
}

// UniformLabel makes every node trivially label-equal to every other,
// matching the source model's SingleLabel.
type UniformLabel struct{}

// Equal always reports true: UniformLabel carries no information.
func (UniformLabel) Equal(Label) bool { return true }

// StringLabel compares nodes by an opaque string payload.
type StringLabel string

// Equal reports whether other is a StringLabel with the same value.
func (l StringLabel) Equal(other Label) bool {
	o, ok := other.(StringLabel)
	return ok && l == o
}

// TypedLabel compares nodes by a (type tag, value) pair, for graphs
// whose labels distinguish both a category and a payload.
type TypedLabel struct {
	Type  string
	Value string
}

// Equal reports whether other is a TypedLabel with the same Type and Value.
func (l TypedLabel) Equal(other Label) bool {
	o, ok := other.(TypedLabel)
	return ok && l == o
}

// Node is a single vertex: an ID plus its label.
type Node struct {
	ID    ID
	Label Label
}

// Edge is a directed connection between two nodes, each identified by ID.
type Edge struct {
	From ID
	To   ID
}

// Graph is an immutable, frozen directed labeled graph. Build one with
// a Builder and Builder.Freeze; never construct a Graph literal directly.
type Graph struct {
	nodes    []Node
	edges    []Edge
	index    map[ID]int // node ID -> dense position
	adj      [][]ID     // adj[pos] = successor IDs, insertion order
	adjInv   [][]ID     // adjInv[pos] = predecessor IDs, insertion order
	nodeByID map[ID]*Node
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// EdgePairs returns the (From, To) node pair for every edge, in
// insertion order.
func (g *Graph) EdgePairs() [][2]Node {
	pairs := make([][2]Node, 0, len(g.edges))
	for _, e := range g.edges {
		pairs = append(pairs, [2]Node{*g.nodeByID[e.From], *g.nodeByID[e.To]})
	}
	return pairs
}

// Node returns the node with the given id and whether it exists.
func (g *Graph) Node(id ID) (Node, bool) {
	n, ok := g.nodeByID[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Adj returns the successor IDs of id, in insertion order. Unknown ids
// return nil.
func (g *Graph) Adj(id ID) []ID {
	pos, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.adj[pos]
}

// AdjInv returns the predecessor IDs of id, in insertion order. Unknown
// ids return nil.
func (g *Graph) AdjInv(id ID) []ID {
	pos, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.adjInv[pos]
}

// OutDegree returns len(Adj(id)).
func (g *Graph) OutDegree(id ID) int {
	return len(g.Adj(id))
}
