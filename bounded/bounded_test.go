package bounded_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sim/bounded"
	"github.com/katalvlaran/lvlath-sim/graph"
)

func TestGetBoundedSimulation_SkipsIntermediateWithinBound(t *testing.T) {
	b1 := graph.NewBuilder()
	b1.AddNode(1, graph.StringLabel("a"))
	b1.AddNode(2, graph.StringLabel("c"))
	b1.AddEdge(1, 2)
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewBuilder()
	b2.AddNode(10, graph.StringLabel("a"))
	b2.AddNode(11, graph.StringLabel("b"))
	b2.AddNode(12, graph.StringLabel("c"))
	b2.AddEdge(10, 11)
	b2.AddEdge(11, 12)
	g2, err := b2.Freeze()
	require.NoError(t, err)

	constTwo := func(uint64, uint64) int { return 2 }

	sim := bounded.GetBoundedSimulation(g1, g2, constTwo)

	require.Equal(t, map[uint64]struct{}{10: {}}, sim[1])
	require.Equal(t, map[uint64]struct{}{12: {}}, sim[2])
}

func TestGetBoundedSimulation_DisjointLabelsYieldEmptyImages(t *testing.T) {
	b1 := graph.NewBuilder()
	b1.AddNode(1, graph.StringLabel("a"))
	b1.AddNode(2, graph.StringLabel("c"))
	b1.AddEdge(1, 2)
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewBuilder()
	b2.AddNode(10, graph.StringLabel("x"))
	b2.AddNode(11, graph.StringLabel("y"))
	b2.AddEdge(10, 11)
	g2, err := b2.Freeze()
	require.NoError(t, err)

	constOne := func(uint64, uint64) int { return 1 }

	sim := bounded.GetBoundedSimulation(g1, g2, constOne)
	require.Len(t, sim, 2)
	require.Empty(t, sim[1])
	require.Empty(t, sim[2])
}

// Two g1 edges into the same shared target node carry different
// bounds; both resolve through the same (bound, u', v) keyed anc/dec
// tables without one edge's entry clobbering the other's.
func TestGetBoundedSimulation_DistinctBoundsPerEdge(t *testing.T) {
	b1 := graph.NewBuilder()
	b1.AddNode(1, graph.StringLabel("a"))
	b1.AddNode(2, graph.StringLabel("a"))
	b1.AddNode(3, graph.StringLabel("c"))
	b1.AddEdge(1, 3)
	b1.AddEdge(2, 3)
	g1, err := b1.Freeze()
	require.NoError(t, err)

	b2 := graph.NewBuilder()
	b2.AddNode(10, graph.StringLabel("a"))
	b2.AddNode(11, graph.StringLabel("b"))
	b2.AddNode(12, graph.StringLabel("c"))
	b2.AddEdge(10, 11)
	b2.AddEdge(11, 12)
	g2, err := b2.Freeze()
	require.NoError(t, err)

	bnd := func(src, dst uint64) int {
		if src == 1 {
			return 1
		}
		return 2
	}

	require.NotPanics(t, func() {
		sim := bounded.GetBoundedSimulation(g1, g2, bnd)
		require.Subset(t, []uint64{10}, keysOf(sim[1]))
		require.Subset(t, []uint64{10}, keysOf(sim[2]))
	})
}

func keysOf(m map[uint64]struct{}) []uint64 {
	out := make([]uint64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
