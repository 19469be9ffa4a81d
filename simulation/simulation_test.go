package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/simulation"
)

// chain builds a -> b -> c ... with a single label per letter given.
func chain(labels ...string) *graph.Graph {
	b := graph.NewBuilder()
	for i, l := range labels {
		b.AddNode(uint64(i), graph.StringLabel(l))
	}
	for i := 0; i < len(labels)-1; i++ {
		b.AddEdge(uint64(i), uint64(i+1))
	}
	g, err := b.Freeze()
	if err != nil {
		panic(err)
	}
	return g
}

func TestGetSimulation_SelfLoopIsIdentity(t *testing.T) {
	b := graph.NewBuilder()
	b.AddNode(1, graph.StringLabel("a"))
	b.AddEdge(1, 1)
	g, err := b.Freeze()
	require.NoError(t, err)

	sim := simulation.GetSimulation(g)
	require.True(t, simulation.HasSimulation(sim))
	require.Equal(t, map[uint64]struct{}{1: {}}, sim[1])
}

func TestGetSimulation_LabelMismatchShrinksImage(t *testing.T) {
	// x -> y : the two nodes carry distinct labels.
	b := graph.NewBuilder()
	b.AddNode(1, graph.StringLabel("x"))
	b.AddNode(2, graph.StringLabel("y"))
	b.AddEdge(1, 2)
	g, err := b.Freeze()
	require.NoError(t, err)

	sim := simulation.GetSimulation(g)
	// node 1 has a successor and a unique label: only itself qualifies.
	require.Equal(t, map[uint64]struct{}{1: {}}, sim[1])
	// node 2 is a leaf with a unique label: leaves carry no out-degree
	// restriction on their own candidates, so it still matches itself.
	require.Equal(t, map[uint64]struct{}{2: {}}, sim[2])
}

func TestGetSimulationInter_MatchesNaive(t *testing.T) {
	g1 := chain("a", "b", "a", "b")
	bld2 := graph.NewBuilder()
	bld2.AddNode(10, graph.StringLabel("a"))
	bld2.AddNode(11, graph.StringLabel("b"))
	bld2.AddNode(12, graph.StringLabel("a"))
	bld2.AddNode(13, graph.StringLabel("b"))
	bld2.AddEdge(10, 11)
	bld2.AddEdge(11, 12)
	bld2.AddEdge(12, 13)
	g2, err := bld2.Freeze()
	require.NoError(t, err)

	inter := simulation.GetSimulationInter(g1, g2)
	naive := simulation.GetSimulationNaive(g1, g2)

	require.Equal(t, len(naive), len(inter))
	for id, image := range naive {
		require.Equal(t, image, inter[id], "node %d", id)
	}
}

func TestGetSimulationInter_EmptyImageOnNoMatch(t *testing.T) {
	g1 := chain("a", "b")
	g2 := chain("x", "y")

	sim := simulation.GetSimulationInter(g1, g2)
	require.False(t, simulation.HasSimulation(sim))
	for _, image := range sim {
		require.Empty(t, image)
	}
}

func TestHasSimulation_EmptyRelationVacuouslyTrue(t *testing.T) {
	require.True(t, simulation.HasSimulation(simulation.Sim{}))
}

func TestGetSimulation_NonLeafRequiresSuccessorCandidate(t *testing.T) {
	b := graph.NewBuilder()
	b.AddNode(1, graph.StringLabel("a")) // leaf
	b.AddNode(2, graph.StringLabel("a")) // has a successor
	b.AddNode(3, graph.StringLabel("a")) // successor target, leaf
	b.AddEdge(2, 3)
	g, err := b.Freeze()
	require.NoError(t, err)

	sim := simulation.GetSimulation(g)
	// node 2 has an out-edge: only label-equal candidates that
	// themselves have an out-edge qualify, i.e. only node 2 itself.
	require.Equal(t, map[uint64]struct{}{2: {}}, sim[2])
	// node 1 and node 3 are leaves: unrestricted by out-degree, every
	// label-equal node qualifies.
	require.Len(t, sim[1], 3)
	require.Len(t, sim[3], 3)
}
