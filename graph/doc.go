// Package graph is the shared node/edge/hyperedge model that the
// simulation, bounded, and hypersim engines operate over.
//
// Build a graph incrementally with Builder (or a Hypergraph with
// HyperBuilder), then call Freeze to obtain an immutable, index-cached
// value. Engines accept only the frozen type, never the builder, so a
// graph cannot change shape underneath a running algorithm.
package graph
