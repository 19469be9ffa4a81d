package hypersim

import (
	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/simulation"
)

// GetHyperSimulationNaive computes hyper-simulation with the strict
// initialization: a candidate v must, for every hyperedge e containing
// u, be reachable through some predicate-satisfying e' containing v.
//
// Algorithm: seed sim(u) via candidateSurvivesAllContainingEdges for
// every type-compatible v (a u with no containing hyperedge seeds to
// the empty image — there is no e to intersect over, so no candidate
// can be confirmed), then refine to a fixpoint with
// hasRefinementWitness.
//
// Time complexity: O(V1*V2*E1*E2) for initialization in the worst
// case (bounded by hyperedge membership degree in practice); the
// refinement loop is bounded by the total number of deletions across
// all rounds. Memory: O(V1*V2) for sim.
func GetHyperSimulationNaive(g1, g2 *graph.Hypergraph, typeOracle TypeOracle, predicate LPredicate, match LMatch) simulation.Sim {
	sim := make(simulation.Sim, len(g1.Nodes()))

	for _, u := range g1.Nodes() {
		candidates := make(map[uint64]struct{})
		containingU := g1.ContainingHyperedges(u.ID)
		if len(containingU) != 0 {
			for _, v := range g2.Nodes() {
				if !typeOracle.TypeSame(u, v) {
					continue
				}
				if candidateSurvivesAllContainingEdges(g2, predicate, match, containingU, u.ID, v.ID) {
					candidates[v.ID] = struct{}{}
				}
			}
		}
		sim[u.ID] = candidates
	}

	refineUntilStable(g1, g2, predicate, match, sim)

	return sim
}

// candidateSurvivesAllContainingEdges reports whether v belongs to the
// intersection, over every e in containingU, of the union over
// predicate-matching e' containing v of MatchWithNode(e, e', u).
func candidateSurvivesAllContainingEdges(g2 *graph.Hypergraph, predicate LPredicate, match LMatch, containingU []graph.Hyperedge, u, v uint64) bool {
	containingV := g2.ContainingHyperedges(v)
	for _, e := range containingU {
		matched := false
		for _, ePrime := range containingV {
			if !predicate.EdgeMatch(e, ePrime) {
				continue
			}
			if _, ok := match.MatchWithNode(e, ePrime, u)[v]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
