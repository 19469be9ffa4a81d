// Package hypersim computes simulation relations between hypergraphs,
// delegating label and match decisions to externally supplied oracles
// rather than a built-in label-equality test.
//
// Three refinement variants are provided: GetHyperSimulationNaive
// (intersects l_match_with_node across every containing hyperedge
// pair), GetHyperSimulationSoft (the same refinement but only
// hyperedge pairs satisfying the predicate constrain membership —
// pairs the predicate never examines are treated as a non-constraint
// rather than a rejection), and GetHyperSimulationCluster (driven by a
// pre-computed semantic-cluster D-match relation, emitting a
// trace.Log of every deletion).
//
// GetHyperSimulationFixpoint and GetHyperSimulationRecursive are
// exposed only as grerr.ErrNotImplemented stubs: the source design
// leaves both unspecified beyond a signature.
package hypersim
