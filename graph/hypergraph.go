package graph

import "github.com/katalvlaran/lvlath-sim/grerr"

// Type is the node-type-equality capability a Hypergraph's nodes carry,
// parallel to Label. Hyper-simulation's TypeOracle consults it via
// TypeSame instead of through this interface directly, so a caller
// that has no real type distinction can share UniformLabel's shape.
type Type interface {
	TypeEqual(other Type) bool
}

// UniformType makes every node trivially type-equal to every other.
type UniformType struct{}

// TypeEqual always reports true.
func (UniformType) TypeEqual(Type) bool { return true }

// HNode is a hypergraph node: an ID plus label and type.
type HNode struct {
	ID    ID
	Label Label
	Type  Type
}

// Hyperedge is an undirected set of member node IDs.
type Hyperedge struct {
	Index int // position among Hypergraph.Hyperedges(), stable after Freeze
	Nodes []ID
}

// Hypergraph is an immutable, frozen collection of hypernodes and
// hyperedges. Build one with a HyperBuilder and HyperBuilder.Freeze.
type Hypergraph struct {
	nodes      []HNode
	nodeByID   map[ID]*HNode
	hyperedges []Hyperedge
	containing [][]int // containing[pos] = hyperedge indices, in hyperedge insertion order
	index      map[ID]int
}

// Nodes returns every hypernode in insertion order.
func (h *Hypergraph) Nodes() []HNode { return h.nodes }

// Node returns the hypernode with the given id and whether it exists.
func (h *Hypergraph) Node(id ID) (HNode, bool) {
	n, ok := h.nodeByID[id]
	if !ok {
		return HNode{}, false
	}
	return *n, true
}

// Hyperedges returns every hyperedge in insertion order.
func (h *Hypergraph) Hyperedges() []Hyperedge { return h.hyperedges }

// ContainingHyperedges returns the hyperedges that include id, in
// insertion order. A node with no containing hyperedge returns nil —
// callers reading an oracle's initial image for such a node should
// treat that as "no candidates", not as a universal match.
func (h *Hypergraph) ContainingHyperedges(id ID) []Hyperedge {
	pos, ok := h.index[id]
	if !ok {
		return nil
	}
	out := make([]Hyperedge, 0, len(h.containing[pos]))
	for _, hi := range h.containing[pos] {
		out = append(out, h.hyperedges[hi])
	}
	return out
}

// HyperBuilder accumulates hypernodes and hyperedges before freezing.
type HyperBuilder struct {
	nodes    []HNode
	nodeByID map[ID]int // node ID -> position in nodes
	edges    [][]ID
}

// NewHyperBuilder returns an empty HyperBuilder.
func NewHyperBuilder() *HyperBuilder {
	return &HyperBuilder{nodeByID: make(map[ID]int)}
}

// AddNode registers a hypernode with the given id, label, and type.
func (b *HyperBuilder) AddNode(id ID, label Label, typ Type) *HyperBuilder {
	if i, ok := b.nodeByID[id]; ok {
		b.nodes[i].Label, b.nodes[i].Type = label, typ
		return b
	}
	n := HNode{ID: id, Label: label, Type: typ}
	b.nodes = append(b.nodes, n)
	b.nodeByID[id] = len(b.nodes) - 1
	return b
}

// AddHyperedge registers a hyperedge over the given member node ids.
func (b *HyperBuilder) AddHyperedge(members ...ID) *HyperBuilder {
	m := make([]ID, len(members))
	copy(m, members)
	b.edges = append(b.edges, m)
	return b
}

// Freeze validates every hyperedge member and derives the
// node-to-containing-hyperedge index, returning an immutable
// *Hypergraph.
//
// Freeze returns grerr.ErrDanglingEdge if any hyperedge names an id
// never passed to AddNode.
func (b *HyperBuilder) Freeze() (*Hypergraph, error) {
	index := make(map[ID]int, len(b.nodes))
	for i, n := range b.nodes {
		index[n.ID] = i
	}

	for _, members := range b.edges {
		for _, id := range members {
			if _, ok := index[id]; !ok {
				return nil, grerr.ErrDanglingEdge
			}
		}
	}

	hyperedges := make([]Hyperedge, len(b.edges))
	containing := make([][]int, len(b.nodes))
	for i, members := range b.edges {
		m := make([]ID, len(members))
		copy(m, members)
		hyperedges[i] = Hyperedge{Index: i, Nodes: m}
		for _, id := range members {
			pos := index[id]
			containing[pos] = append(containing[pos], i)
		}
	}

	nodes := make([]HNode, len(b.nodes))
	copy(nodes, b.nodes)
	nodeByID := make(map[ID]*HNode, len(nodes))
	for i := range nodes {
		nodeByID[nodes[i].ID] = &nodes[i]
	}

	return &Hypergraph{
		nodes:      nodes,
		nodeByID:   nodeByID,
		hyperedges: hyperedges,
		containing: containing,
		index:      index,
	}, nil
}
