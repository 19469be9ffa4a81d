package hypersim_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/hypersim"
)

// alwaysType makes every node pair type-compatible, isolating the
// tests below to predicate/match/cluster logic.
type alwaysType struct{}

func (alwaysType) TypeSame(graph.HNode, graph.HNode) bool { return true }

// indexPredicate matches two hyperedges when they share the given
// index, modelling a one-to-one hyperedge correspondence.
type indexPredicate struct{}

func (indexPredicate) EdgeMatch(e, ePrime graph.Hyperedge) bool { return e.Index == ePrime.Index }

// perIndexMatch maps every left id of hyperedge index i to a single
// fixed right id for that index, and reports dom as the left edge's
// own (singleton) member set.
type perIndexMatch struct {
	rightByIndex map[int]uint64
}

func (m perIndexMatch) MatchWithNode(e, _ graph.Hyperedge, _ uint64) map[uint64]struct{} {
	v, ok := m.rightByIndex[e.Index]
	if !ok {
		return nil
	}
	return map[uint64]struct{}{v: {}}
}

func (perIndexMatch) Dom(e, _ graph.Hyperedge) []uint64 {
	return e.Nodes
}

func buildSingletonHyperedgeGraphs(t *testing.T) (*graph.Hypergraph, *graph.Hypergraph) {
	t.Helper()

	b1 := graph.NewHyperBuilder()
	b1.AddNode(1, graph.UniformLabel{}, graph.UniformType{})
	b1.AddNode(2, graph.UniformLabel{}, graph.UniformType{})
	b1.AddHyperedge(1) // index 0
	b1.AddHyperedge(2) // index 1
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewHyperBuilder()
	b2.AddNode(10, graph.UniformLabel{}, graph.UniformType{})
	b2.AddNode(11, graph.UniformLabel{}, graph.UniformType{})
	b2.AddHyperedge(10) // index 0
	b2.AddHyperedge(11) // index 1
	g2, err := b2.Freeze()
	require.NoError(t, err)

	return g1, g2
}

func TestGetHyperSimulationNaive_SingleHyperedgePerIDMatchSurvivesRefinement(t *testing.T) {
	g1, g2 := buildSingletonHyperedgeGraphs(t)
	match := perIndexMatch{rightByIndex: map[int]uint64{0: 10, 1: 11}}

	sim := hypersim.GetHyperSimulationNaive(g1, g2, alwaysType{}, indexPredicate{}, match)

	require.Equal(t, map[uint64]struct{}{10: {}}, sim[1])
	require.Equal(t, map[uint64]struct{}{11: {}}, sim[2])
}

func TestGetHyperSimulationNaive_NoContainingHyperedgeYieldsEmptyImage(t *testing.T) {
	b1 := graph.NewHyperBuilder()
	b1.AddNode(1, graph.UniformLabel{}, graph.UniformType{}) // no hyperedge at all
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewHyperBuilder()
	b2.AddNode(10, graph.UniformLabel{}, graph.UniformType{})
	b2.AddHyperedge(10)
	g2, err := b2.Freeze()
	require.NoError(t, err)

	sim := hypersim.GetHyperSimulationNaive(g1, g2, alwaysType{}, indexPredicate{}, perIndexMatch{rightByIndex: map[int]uint64{0: 10}})

	require.Empty(t, sim[1], "a left node with no containing hyperedge has no e to intersect over, so no candidate is ever confirmed")
}

func TestGetHyperSimulationSoft_NoIndexEntryAcceptsUnconditionally(t *testing.T) {
	// u=1 belongs to no hyperedge, so it never appears in the
	// predicate index for any v; the soft variant's "absence of
	// evidence is not evidence of mismatch" rule accepts every
	// type-compatible v, the opposite of the naive variant's choice
	// for the structurally identical input above.
	b1 := graph.NewHyperBuilder()
	b1.AddNode(1, graph.UniformLabel{}, graph.UniformType{})
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewHyperBuilder()
	b2.AddNode(10, graph.UniformLabel{}, graph.UniformType{})
	b2.AddNode(11, graph.UniformLabel{}, graph.UniformType{})
	b2.AddHyperedge(10)
	g2, err := b2.Freeze()
	require.NoError(t, err)

	sim := hypersim.GetHyperSimulationSoft(g1, g2, alwaysType{}, indexPredicate{}, perIndexMatch{rightByIndex: map[int]uint64{0: 10}})

	require.Equal(t, map[uint64]struct{}{10: {}, 11: {}}, sim[1])
}

// labelType compares type-equality by label, so a non-trivial
// TypeOracle can keep a test's candidate pool scoped to same-group
// nodes even though label itself is not what the engine consults.
type labelType struct{}

func (labelType) TypeSame(u, v graph.HNode) bool { return u.Label.Equal(v.Label) }

func TestGetHyperSimulationSoft_IndexedPairStillConstrains(t *testing.T) {
	// g2's index-0 hyperedge has two members; only one of them is the
	// match MatchWithNode actually names, so a (u, v) pair that IS
	// present in the predicate index is still rejected when the match
	// doesn't license it — the soft relaxation only waives the check
	// for pairs absent from the index entirely.
	b1 := graph.NewHyperBuilder()
	b1.AddNode(1, graph.StringLabel("A"), graph.UniformType{})
	b1.AddNode(2, graph.StringLabel("B"), graph.UniformType{})
	b1.AddHyperedge(1) // index 0
	b1.AddHyperedge(2) // index 1
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewHyperBuilder()
	b2.AddNode(10, graph.StringLabel("A"), graph.UniformType{})
	b2.AddNode(11, graph.StringLabel("A"), graph.UniformType{})
	b2.AddNode(12, graph.StringLabel("B"), graph.UniformType{})
	b2.AddHyperedge(10, 11) // index 0, two members
	b2.AddHyperedge(12)     // index 1
	g2, err := b2.Freeze()
	require.NoError(t, err)

	match := perIndexMatch{rightByIndex: map[int]uint64{0: 10, 1: 12}}

	sim := hypersim.GetHyperSimulationSoft(g1, g2, labelType{}, indexPredicate{}, match)

	require.Equal(t, map[uint64]struct{}{10: {}}, sim[1])
	require.Equal(t, map[uint64]struct{}{12: {}}, sim[2])
}

// clusterFixture is a ClusterOracle/DMatch pair where (u,v) is
// licensed by exactly one cluster pair {Left: u, Right: v}, and that
// cluster licenses exactly the "correct" id pair for that u.
type clusterFixture struct {
	rightFor map[uint64]uint64 // the one v each u is meant to match
}

func (f clusterFixture) Clusters(u, v uint64) []hypersim.ClusterPair {
	return []hypersim.ClusterPair{{Left: hypersim.ClusterID(u), Right: hypersim.ClusterID(v)}}
}

func (f clusterFixture) Match(cu, cv hypersim.ClusterID) map[[2]uint64]struct{} {
	u := uint64(cu)
	v := f.rightFor[u]
	return map[[2]uint64]struct{}{{u, v}: {}}
}

func TestGetHyperSimulationCluster_LicensedPairsSurviveAndMismatchesTrace(t *testing.T) {
	b1 := graph.NewHyperBuilder()
	b1.AddNode(1, graph.UniformLabel{}, graph.UniformType{})
	b1.AddNode(2, graph.UniformLabel{}, graph.UniformType{})
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewHyperBuilder()
	b2.AddNode(10, graph.UniformLabel{}, graph.UniformType{})
	b2.AddNode(11, graph.UniformLabel{}, graph.UniformType{})
	g2, err := b2.Freeze()
	require.NoError(t, err)

	fixture := clusterFixture{rightFor: map[uint64]uint64{1: 10, 2: 11}}

	sim, log := hypersim.GetHyperSimulationCluster(g1, g2, alwaysType{}, fixture, fixture)

	require.Equal(t, map[uint64]struct{}{10: {}}, sim[1])
	require.Equal(t, map[uint64]struct{}{11: {}}, sim[2])

	require.Len(t, log.Events, 2)
	require.Equal(t, 1, log.Events[0].ClusterID)
	require.Equal(t, [][2]uint64{{1, 10}}, log.Events[0].Pairs)
	require.Equal(t, 2, log.Events[1].ClusterID)
	require.Equal(t, [][2]uint64{{2, 11}}, log.Events[1].Pairs)
}

func TestGetHyperSimulationCluster_DeterministicAcrossRuns(t *testing.T) {
	b1 := graph.NewHyperBuilder()
	b1.AddNode(1, graph.UniformLabel{}, graph.UniformType{})
	b1.AddNode(2, graph.UniformLabel{}, graph.UniformType{})
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewHyperBuilder()
	b2.AddNode(10, graph.UniformLabel{}, graph.UniformType{})
	b2.AddNode(11, graph.UniformLabel{}, graph.UniformType{})
	g2, err := b2.Freeze()
	require.NoError(t, err)

	fixture := clusterFixture{rightFor: map[uint64]uint64{1: 10, 2: 11}}

	_, log1 := hypersim.GetHyperSimulationCluster(g1, g2, alwaysType{}, fixture, fixture)
	_, log2 := hypersim.GetHyperSimulationCluster(g1, g2, alwaysType{}, fixture, fixture)

	require.Equal(t, log1.Events, log2.Events)

	var buf1, buf2 bytes.Buffer
	require.NoError(t, log1.WriteTo(&buf1))
	require.NoError(t, log2.WriteTo(&buf2))
	require.Equal(t, buf1.Bytes(), buf2.Bytes())
}
