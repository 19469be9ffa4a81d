package bounded

import (
	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/simulation"
)

// Bound gives the path-length budget allowed for matching the edge
// src -> dst of the left graph against the right graph.
type Bound func(src, dst uint64) int

type ancDecKey struct {
	bound  int
	uPrime uint64
	v      uint64
}

// GetBoundedSimulation computes bounded simulation of g1 into g2: each
// successor u' of a left node u need only be matched by a node
// reachable from v within bound(u, u'), rather than by an immediate
// successor of v.
//
// Algorithm: build g2's all-pairs distance table, derive anc/dec
// indices for every edge of g1, seed sim(u) the same label/out-degree
// way as classical simulation, compute the residual presim(u) set (v
// lacks a predecessor witness), then refine until every presim set is
// empty. An emptied sim(u') during refinement short-circuits to the
// empty relation, per the source design's early-return rule.
//
// Time complexity: O(V2^2) for the distance table, O(E1*V2^2) for
// anc/dec, and a refinement loop bounded by the total number of
// (node, candidate) deletions. Memory: O(E1*V2) for anc/dec plus
// O(V1*V2) for sim.
func GetBoundedSimulation(g1, g2 *graph.Graph, bound Bound) simulation.Sim {
	dist := buildDistanceTable(g2)

	anc := make(map[ancDecKey]map[uint64]struct{})
	dec := make(map[ancDecKey]map[uint64]struct{})

	nodes1 := g1.Nodes()
	nodes2 := g2.Nodes()

	labelSameG1G2 := func(a, b graph.Node) bool {
		if a.Label == nil || b.Label == nil {
			return a.Label == b.Label
		}
		return a.Label.Equal(b.Label)
	}

	nodeByID1 := make(map[uint64]graph.Node, len(nodes1))
	for _, n := range nodes1 {
		nodeByID1[n.ID] = n
	}
	nodeByID2 := make(map[uint64]graph.Node, len(nodes2))
	for _, n := range nodes2 {
		nodeByID2[n.ID] = n
	}

	// anc(bound(u',u), u', v) := { v' | label_same(u',v') and distance(v',v) <= bound }
	for _, uPrime := range nodes1 {
		for _, u := range g1.Adj(uPrime.ID) {
			b := bound(uPrime.ID, u)
			for _, v := range nodes2 {
				key := ancDecKey{b, uPrime.ID, v.ID}
				if _, done := anc[key]; done {
					continue
				}
				set := make(map[uint64]struct{})
				for _, vPrime := range nodes2 {
					if !labelSameG1G2(uPrime, vPrime) {
						continue
					}
					if d, ok := dist.at(vPrime.ID, v.ID); ok && d <= b {
						set[vPrime.ID] = struct{}{}
					}
				}
				anc[key] = set
			}
		}
	}

	// dec(bound(u,u'), u', v) := { v' | label_same(u',v') and distance(v,v') <= bound }
	for _, u := range nodes1 {
		for _, uPrime := range g1.Adj(u.ID) {
			b := bound(u.ID, uPrime)
			uPrimeNode := nodeByID1[uPrime]
			for _, v := range nodes2 {
				key := ancDecKey{b, uPrime, v.ID}
				if _, done := dec[key]; done {
					continue
				}
				set := make(map[uint64]struct{})
				for _, vPrime := range nodes2 {
					if !labelSameG1G2(uPrimeNode, vPrime) {
						continue
					}
					if d, ok := dist.at(v.ID, vPrime.ID); ok && d <= b {
						set[vPrime.ID] = struct{}{}
					}
				}
				dec[key] = set
			}
		}
	}

	// sim(u) seeded as classical simulation's initial candidate set.
	sim := make(simulation.Sim, len(nodes1))
	for _, u := range nodes1 {
		uHasOut := g1.OutDegree(u.ID) != 0
		candidates := make(map[uint64]struct{})
		for _, v := range nodes2 {
			if !labelSameG1G2(u, v) {
				continue
			}
			if uHasOut && g2.OutDegree(v.ID) == 0 {
				continue
			}
			candidates[v.ID] = struct{}{}
		}
		sim[u.ID] = candidates
	}

	// presim(u): v in sim(u) with no predecessor witness.
	presim := make(map[uint64]map[uint64]struct{}, len(nodes1))
	for _, u := range nodes1 {
		candidates := make(map[uint64]struct{})
	vLoop:
		for v := range sim[u.ID] {
			if g2.OutDegree(v) == 0 {
				continue
			}
			for _, uPrime := range g1.AdjInv(u.ID) {
				uPrimeNode := nodeByID1[uPrime]
				if !labelSameG1G2(uPrimeNode, nodeByID2[v]) {
					continue
				}
				b := bound(uPrime, u.ID)
				decSet := dec[ancDecKey{b, uPrime, v}]
				if intersectsSet(decSet, sim[u.ID]) {
					continue vLoop
				}
			}
			candidates[v] = struct{}{}
		}
		presim[u.ID] = candidates
	}

	for {
		var u uint64
		found := false
		for _, n := range nodes1 {
			if len(presim[n.ID]) != 0 {
				u = n.ID
				found = true
				break
			}
		}
		if !found {
			break
		}

		premvU := presim[u]

		for _, uPrime := range g1.AdjInv(u) {
			toRemove := make([]uint64, 0)
			for z := range premvU {
				if _, ok := sim[uPrime][z]; ok {
					toRemove = append(toRemove, z)
				}
			}

			for _, z := range toRemove {
				delete(sim[uPrime], z)
				if len(sim[uPrime]) == 0 {
					return simulation.Sim{}
				}

				type update struct {
					uDoublePrime uint64
					zPrime       uint64
				}
				var updates []update

				for _, uDoublePrime := range g1.AdjInv(uPrime) {
					b := bound(uDoublePrime, uPrime)
					ancSet := anc[ancDecKey{b, uDoublePrime, z}]
					for zPrime := range ancSet {
						if _, already := presim[uPrime][zPrime]; already {
							continue
						}
						decSet := dec[ancDecKey{b, uPrime, zPrime}]
						if !intersectsSet(decSet, sim[uPrime]) {
							updates = append(updates, update{uDoublePrime, zPrime})
						}
					}
				}

				for _, up := range updates {
					presim[up.uDoublePrime][up.zPrime] = struct{}{}
				}
			}
		}

		presim[u] = make(map[uint64]struct{})
	}

	return sim
}

func intersectsSet(a, b map[uint64]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
