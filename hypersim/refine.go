package hypersim

import (
	"sort"

	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/simulation"
)

// hasRefinementWitness reports whether (u, v) survives one refinement
// round: some e containing u and e' containing v, predicate-compatible,
// such that every left-node dom(e,e') constrains has some candidate
// match already present in sim(u).
//
// The membership check is against sim(u) — the node being refined, not
// sim(u') for each dom member — per the source design: l_match_with_node
// yields edge-local candidates, and this check is validating that the
// edge pair's own witnesses are still live in u's own image, not
// cross-checking a different left-node's image.
func hasRefinementWitness(g1, g2 *graph.Hypergraph, predicate LPredicate, match LMatch, sim simulation.Sim, u, v uint64) bool {
	for _, e := range g1.ContainingHyperedges(u) {
		for _, ePrime := range g2.ContainingHyperedges(v) {
			if !predicate.EdgeMatch(e, ePrime) {
				continue
			}
			if allDomSatisfied(match, sim, u, e, ePrime) {
				return true
			}
		}
	}
	return false
}

func allDomSatisfied(match LMatch, sim simulation.Sim, u uint64, e, ePrime graph.Hyperedge) bool {
	for _, uPrime := range match.Dom(e, ePrime) {
		satisfied := false
		for vPrime := range match.MatchWithNode(e, ePrime, uPrime) {
			if _, ok := sim[u][vPrime]; ok {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// refineUntilStable applies hasRefinementWitness to every pair in sim
// until a full pass deletes nothing, mutating sim in place. Deletions
// within one left-node's image are collected before being applied, so
// the witness check for a sibling candidate is never evaluated against
// a partially-updated image.
func refineUntilStable(g1, g2 *graph.Hypergraph, predicate LPredicate, match LMatch, sim simulation.Sim) {
	for {
		changed := false
		for _, u := range g1.Nodes() {
			toDelete := sortedDeletions(sim[u.ID], func(v uint64) bool {
				return !hasRefinementWitness(g1, g2, predicate, match, sim, u.ID, v)
			})
			if len(toDelete) == 0 {
				continue
			}
			changed = true
			for _, v := range toDelete {
				delete(sim[u.ID], v)
			}
		}
		if !changed {
			return
		}
	}
}

// sortedDeletions evaluates reject over candidates in ascending key
// order and returns the keys it rejected, in that same order. Callers
// whose reject has observable side effects (trace appends) depend on
// this fixed evaluation order for deterministic output; candidates is
// never walked in Go's unspecified map iteration order.
func sortedDeletions(candidates map[uint64]struct{}, reject func(uint64) bool) []uint64 {
	keys := make([]uint64, 0, len(candidates))
	for v := range candidates {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var out []uint64
	for _, v := range keys {
		if reject(v) {
			out = append(out, v)
		}
	}
	return out
}
