package simulation

import "github.com/katalvlaran/lvlath-sim/graph"

// GetSimulation computes the greatest simulation of g into itself: the
// largest Sim such that for every v, every w in Sim[v] shares v's
// label, and every successor of v is matched by a simulated successor
// of w.
//
// Algorithm (remove-set refinement, Henzinger-Henzinger-Kopke style):
//  1. sim(v) starts as every label-equal node; when v itself has an
//     out-edge, candidates are further restricted to nodes that also
//     have an out-edge (a leafless node can never be simulated by a
//     leaf). A leaf v carries no such restriction.
//  2. remove(v) starts as the nodes that cannot be a predecessor of any
//     current candidate of v.
//  3. While some remove(v) is non-empty, take and clear remove(v),
//     then propagate its deletions to v's predecessors and extend
//     their remove sets.
//
// Time complexity: O(V*E) in the worst case. Memory: O(V^2).
func GetSimulation(g *graph.Graph) Sim {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return Sim{}
	}

	preV := make(map[uint64]struct{})
	for _, v := range nodes {
		union(preV, g.AdjInv(v.ID))
	}

	sim := make(Sim, len(nodes))
	remove := make(map[uint64]map[uint64]struct{}, len(nodes))

	for _, v := range nodes {
		vHasOut := g.OutDegree(v.ID) != 0
		candidates := make(map[uint64]struct{})
		for _, u := range nodes {
			if !labelSame(v, u) {
				continue
			}
			if vHasOut && g.OutDegree(u.ID) == 0 {
				continue
			}
			candidates[u.ID] = struct{}{}
		}
		sim[v.ID] = candidates

		preSimV := make(map[uint64]struct{})
		for u := range candidates {
			union(preSimV, g.AdjInv(u))
		}

		res := make(map[uint64]struct{})
		for p := range preV {
			if _, ok := preSimV[p]; !ok {
				res[p] = struct{}{}
			}
		}
		remove[v.ID] = res
	}

	for {
		var v uint64
		found := false
		for _, n := range nodes {
			if len(remove[n.ID]) != 0 {
				v = n.ID
				found = true
				break
			}
		}
		if !found {
			break
		}

		// Snapshot and reset remove(v) first, so additions made to it
		// below (when v is its own predecessor) survive for a later round.
		removeV := remove[v]
		remove[v] = make(map[uint64]struct{})

		for _, u := range g.AdjInv(v) {
			for w := range removeV {
				if _, ok := sim[u][w]; !ok {
					continue
				}
				delete(sim[u], w)
				for _, wPrime := range g.AdjInv(w) {
					if !intersects(g.Adj(wPrime), sim[u]) {
						remove[u][wPrime] = struct{}{}
					}
				}
			}
		}
	}

	return sim
}

func intersects(ids []uint64, set map[uint64]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
