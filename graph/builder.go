package graph

import (
	"fmt"

	"github.com/katalvlaran/lvlath-sim/grerr"
)

// Builder accumulates nodes and edges before a graph is frozen.
// Add nodes first, then edges; Freeze validates and derives the
// adjacency indices once, for the lifetime of the resulting *Graph.
type Builder struct {
	nodes    []Node
	edges    []Edge
	nodeByID map[ID]int // node ID -> position in nodes
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodeByID: make(map[ID]int)}
}

// AddNode registers a node with the given id and label. Calling
// AddNode twice with the same id overwrites the earlier label but does
// not change its position in insertion order.
func (b *Builder) AddNode(id ID, label Label) *Builder {
	if i, ok := b.nodeByID[id]; ok {
		b.nodes[i].Label = label
		return b
	}
	n := Node{ID: id, Label: label}
	b.nodes = append(b.nodes, n)
	b.nodeByID[id] = len(b.nodes) - 1
	return b
}

// AddEdge registers a directed edge from src to dst. Endpoints are not
// validated until Freeze, so edges may be added before their nodes.
func (b *Builder) AddEdge(src, dst ID) *Builder {
	b.edges = append(b.edges, Edge{From: src, To: dst})
	return b
}

// Freeze validates every edge endpoint and derives the dense adjacency
// and inverse-adjacency indices, returning an immutable *Graph.
//
// Freeze returns an error wrapping grerr.ErrDanglingEdge, naming the
// missing id, if any edge names an id never passed to AddNode.
func (b *Builder) Freeze() (*Graph, error) {
	index := make(map[ID]int, len(b.nodes))
	for i, n := range b.nodes {
		index[n.ID] = i
	}

	for _, e := range b.edges {
		if _, ok := index[e.From]; !ok {
			return nil, fmt.Errorf("%w: %d", grerr.ErrDanglingEdge, e.From)
		}
		if _, ok := index[e.To]; !ok {
			return nil, fmt.Errorf("%w: %d", grerr.ErrDanglingEdge, e.To)
		}
	}

	adj := make([][]ID, len(b.nodes))
	adjInv := make([][]ID, len(b.nodes))
	for _, e := range b.edges {
		from, to := index[e.From], index[e.To]
		adj[from] = append(adj[from], e.To)
		adjInv[to] = append(adjInv[to], e.From)
	}

	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)

	nodeByID := make(map[ID]*Node, len(nodes))
	for i := range nodes {
		nodeByID[nodes[i].ID] = &nodes[i]
	}

	return &Graph{
		nodes:    nodes,
		edges:    edges,
		index:    index,
		adj:      adj,
		adjInv:   adjInv,
		nodeByID: nodeByID,
	}, nil
}
