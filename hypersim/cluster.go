package hypersim

import (
	"sort"

	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/simulation"
	"github.com/katalvlaran/lvlath-sim/trace"
)

// GetHyperSimulationCluster computes hyper-simulation driven entirely
// by a pre-computed D-match relation: a candidate (u, v) survives only
// while every semantic-cluster pair ClusterOracle names for it keeps
// licensing (u.id, v.id). An initialization rejection by the first
// cluster pair checked is appended to the returned trace.Log as a Base
// event, and every refinement deletion as a Derivation event, in
// insertion order. A candidate rejected at initialization by a later
// cluster pair, or by typeOracle, leaves no event.
//
// sim and simPairs (the flat id-pair mirror of sim, used for the
// cluster subset test) are kept strictly synchronized at every
// deletion: simPairs never holds a pair sim no longer does, or vice
// versa.
//
// Time complexity: O(V1*V2*K) for initialization, K the average
// cluster-pair count per candidate; refinement is bounded by the total
// number of deletions across all rounds, each re-checking the same K
// cluster pairs. Memory: O(V1*V2) for sim and simPairs.
func GetHyperSimulationCluster(g1, g2 *graph.Hypergraph, typeOracle TypeOracle, clusterOracle ClusterOracle, dmatch DMatch) (simulation.Sim, *trace.Log) {
	log := trace.New()
	sim := make(simulation.Sim, len(g1.Nodes()))
	simPairs := make(map[[2]uint64]struct{})

	for _, u := range g1.Nodes() {
		candidates := make(map[uint64]struct{})
		for _, v := range g2.Nodes() {
			if !typeOracle.TypeSame(u, v) {
				continue
			}

			clusters := clusterOracle.Clusters(u.ID, v.ID)
			licensed := true
			for i, cp := range clusters {
				dset := dmatch.Match(cp.Left, cp.Right)
				if _, ok := dset[[2]uint64{u.ID, v.ID}]; ok {
					continue
				}
				licensed = false
				if i == 0 {
					log.Append(trace.EventBase, int(cp.Left), sortedPairs(dset))
				}
				break
			}

			if licensed {
				candidates[v.ID] = struct{}{}
				simPairs[[2]uint64{u.ID, v.ID}] = struct{}{}
			}
		}
		sim[u.ID] = candidates
	}

	for {
		changed := false
		for _, u := range g1.Nodes() {
			toDelete := sortedDeletions(sim[u.ID], func(v uint64) bool {
				return !clusterPairsStillLicense(clusterOracle, dmatch, simPairs, u.ID, v, log)
			})
			if len(toDelete) == 0 {
				continue
			}
			changed = true
			for _, v := range toDelete {
				delete(sim[u.ID], v)
				delete(simPairs, [2]uint64{u.ID, v})
			}
		}
		if !changed {
			return sim, log
		}
	}
}

// clusterPairsStillLicense reports whether every cluster pair
// ClusterOracle names for (u, v) still has its d_match set contained
// in simPairs. The first violating cluster's missing pairs are
// appended to log as a Derivation event as a side effect.
func clusterPairsStillLicense(clusterOracle ClusterOracle, dmatch DMatch, simPairs map[[2]uint64]struct{}, u, v uint64, log *trace.Log) bool {
	for _, cp := range clusterOracle.Clusters(u, v) {
		dset := dmatch.Match(cp.Left, cp.Right)
		missing := setDifference(dset, simPairs)
		if len(missing) != 0 {
			log.Append(trace.EventDerivation, int(cp.Left), sortedPairs(missing))
			return false
		}
	}
	return true
}

func setDifference(a, b map[[2]uint64]struct{}) map[[2]uint64]struct{} {
	out := make(map[[2]uint64]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedPairs(m map[[2]uint64]struct{}) [][2]uint64 {
	out := make([][2]uint64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
