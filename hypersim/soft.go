package hypersim

import (
	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/simulation"
)

// GetHyperSimulationSoft computes hyper-simulation with the relaxed
// initialization: only (u, v) pairs that appear in the pre-computed
// predicate index are constrained by it; pairs absent from the index
// are accepted unconditionally ("soft" — absence of evidence is not
// evidence of mismatch). Refinement applies the naive variant's witness
// test, but only to pairs present in the index; a pair absent from it
// is never deleted.
//
// Time complexity: O(E1*E2*deg) to build the predicate index (deg
// bounded by hyperedge arity), O(V1*V2) to seed sim from it, then the
// same refinement bound as GetHyperSimulationNaive. Memory: O(E1*E2*deg)
// for the index plus O(V1*V2) for sim.
func GetHyperSimulationSoft(g1, g2 *graph.Hypergraph, typeOracle TypeOracle, predicate LPredicate, match LMatch) simulation.Sim {
	index := buildPredicateIndex(g1, g2, predicate)

	sim := make(simulation.Sim, len(g1.Nodes()))
	for _, u := range g1.Nodes() {
		candidates := make(map[uint64]struct{})
		for _, v := range g2.Nodes() {
			if !typeOracle.TypeSame(u, v) {
				continue
			}
			pairs, constrained := index[[2]uint64{u.ID, v.ID}]
			if !constrained || matchesEveryIndexedPair(match, pairs, u.ID, v.ID) {
				candidates[v.ID] = struct{}{}
			}
		}
		sim[u.ID] = candidates
	}

	// Same witness test as refineUntilStable, applied to indexed pairs only.
	for changed := true; changed; {
		changed = false
		for _, u := range g1.Nodes() {
			for _, v := range sortedDeletions(sim[u.ID], func(v uint64) bool {
				_, constrained := index[[2]uint64{u.ID, v}]
				return constrained && !hasRefinementWitness(g1, g2, predicate, match, sim, u.ID, v)
			}) {
				delete(sim[u.ID], v)
				changed = true
			}
		}
	}

	return sim
}

// buildPredicateIndex maps each (u, v) node-id pair to every hyperedge
// pair (e, e') with u ∈ e, v ∈ e', and predicate.EdgeMatch(e, e').
func buildPredicateIndex(g1, g2 *graph.Hypergraph, predicate LPredicate) map[[2]uint64][]EdgePair {
	index := make(map[[2]uint64][]EdgePair)
	for _, e := range g1.Hyperedges() {
		for _, ePrime := range g2.Hyperedges() {
			if !predicate.EdgeMatch(e, ePrime) {
				continue
			}
			pair := EdgePair{Left: e, Right: ePrime}
			for _, u := range e.Nodes {
				for _, v := range ePrime.Nodes {
					key := [2]uint64{u, v}
					index[key] = append(index[key], pair)
				}
			}
		}
	}
	return index
}

func matchesEveryIndexedPair(match LMatch, pairs []EdgePair, u, v uint64) bool {
	for _, p := range pairs {
		if _, ok := match.MatchWithNode(p.Left, p.Right, u)[v]; !ok {
			return false
		}
	}
	return true
}
