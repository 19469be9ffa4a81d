package simulation

import "github.com/katalvlaran/lvlath-sim/graph"

// GetSimulationNaive computes the same relation as GetSimulationInter
// by a straightforward fixed-point iteration instead of remove-set
// refinement: initialize every label-equal pair as a candidate, then
// repeatedly strip any candidate whose matching successor requirement
// is violated, until nothing changes.
//
// This is intentionally the slower of the two inter-graph algorithms;
// it exists as an independent check that GetSimulationInter's
// optimization preserves the result.
func GetSimulationNaive(g1, g2 *graph.Graph) Sim {
	nodes1 := g1.Nodes()
	nodes2 := g2.Nodes()

	sim := make(Sim, len(nodes1))
	for _, u := range nodes1 {
		candidates := make(map[uint64]struct{})
		for _, v := range nodes2 {
			if labelSame(u, v) {
				candidates[v.ID] = struct{}{}
			}
		}
		sim[u.ID] = candidates
	}

	for {
		changed := false
		for _, e := range g1.Edges() {
			image := sim[e.From]
			for v := range image {
				if !hasMatchedSuccessor(g2, v, sim[e.To]) {
					delete(image, v)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return sim
}

func hasMatchedSuccessor(g2 *graph.Graph, v uint64, targetImage map[uint64]struct{}) bool {
	for _, vPrime := range g2.Adj(v) {
		if _, ok := targetImage[vPrime]; ok {
			return true
		}
	}
	return false
}
