package simulation

import "github.com/katalvlaran/lvlath-sim/graph"

// GetSimulationInter computes the greatest simulation of g1 into g2:
// a Sim mapping each g1 node id to g2 node ids that simulate it.
//
// Structurally identical to GetSimulation, but pre/post on the right
// side read g2's indices while the outer predecessor walk reads g1's.
// remove(v) is taken and reset before v's predecessors are processed,
// so remove-set additions are never made to the set being ranged over,
// and additions to remove(v) itself (a self-loop on v in g1) are kept
// for a later round.
func GetSimulationInter(g1, g2 *graph.Graph) Sim {
	nodes1 := g1.Nodes()
	nodes2 := g2.Nodes()
	if len(nodes1) == 0 {
		return Sim{}
	}

	preV2 := make(map[uint64]struct{})
	for _, v := range nodes2 {
		union(preV2, g2.AdjInv(v.ID))
	}

	sim := make(Sim, len(nodes1))
	remove := make(map[uint64]map[uint64]struct{}, len(nodes1))

	for _, v := range nodes1 {
		vHasOut := g1.OutDegree(v.ID) != 0
		candidates := make(map[uint64]struct{})
		for _, u := range nodes2 {
			if !labelSame(v, u) {
				continue
			}
			if vHasOut && g2.OutDegree(u.ID) == 0 {
				continue
			}
			candidates[u.ID] = struct{}{}
		}
		sim[v.ID] = candidates

		preSimV := make(map[uint64]struct{})
		for u := range candidates {
			union(preSimV, g2.AdjInv(u))
		}

		res := make(map[uint64]struct{})
		for p := range preV2 {
			if _, ok := preSimV[p]; !ok {
				res[p] = struct{}{}
			}
		}
		remove[v.ID] = res
	}

	for {
		var v uint64
		found := false
		for _, n := range nodes1 {
			if len(remove[n.ID]) != 0 {
				v = n.ID
				found = true
				break
			}
		}
		if !found {
			break
		}

		removeV := remove[v]
		remove[v] = make(map[uint64]struct{})

		for _, u := range g1.AdjInv(v) {
			for w := range removeV {
				if _, ok := sim[u][w]; !ok {
					continue
				}
				delete(sim[u], w)
				for _, wPrime := range g2.AdjInv(w) {
					if !intersects(g2.Adj(wPrime), sim[u]) {
						remove[u][wPrime] = struct{}{}
					}
				}
			}
		}
	}

	return sim
}
