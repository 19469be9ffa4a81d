package hypersim

import "github.com/katalvlaran/lvlath-sim/graph"

// LPredicate decides whether a left hyperedge and a right hyperedge are
// compatible enough to participate in a match.
type LPredicate interface {
	EdgeMatch(e, ePrime graph.Hyperedge) bool
}

// LMatch supplies the node-level match detail once a hyperedge pair has
// passed LPredicate.
type LMatch interface {
	// MatchWithNode returns the right-hand node ids that may stand in
	// for left-node u within the edge pair (e, ePrime).
	MatchWithNode(e, ePrime graph.Hyperedge, u uint64) map[uint64]struct{}
	// Dom returns the left-node ids the edge pair (e, ePrime) constrains.
	Dom(e, ePrime graph.Hyperedge) []uint64
}

// TypeOracle decides node-type equivalence, independent of Label.
type TypeOracle interface {
	TypeSame(u, v graph.HNode) bool
}

// ClusterID names a semantic cluster on one side of a match.
type ClusterID int

// ClusterPair is a reason a candidate pair (u, v) could be matched: a
// cluster on the left side paired with one on the right.
type ClusterPair struct {
	Left  ClusterID
	Right ClusterID
}

// ClusterOracle returns every cluster-pair reason a candidate (u, v)
// could be matched under.
type ClusterOracle interface {
	Clusters(u, v uint64) []ClusterPair
}

// DMatch returns the id-pair set a cluster pair licenses: the set of
// (left id, right id) pairs that pair of clusters supports.
type DMatch interface {
	Match(cu, cv ClusterID) map[[2]uint64]struct{}
}

// EdgePair is a hyperedge pair satisfying an LPredicate, as recorded in
// the soft variant's pre-index.
type EdgePair struct {
	Left  graph.Hyperedge
	Right graph.Hyperedge
}
