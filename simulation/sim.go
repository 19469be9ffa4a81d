package simulation

import "github.com/katalvlaran/lvlath-sim/graph"

// Sim is a simulation relation, keyed by left-node id, with values the
// set of right-node ids that currently simulate it. Node id, rather
// than *graph.Node, is the key per the ownership rule: a Sim must
// outlive the graphs it was computed from without pinning them.
type Sim map[uint64]map[uint64]struct{}

// HasSimulation reports whether every node in s has a non-empty image.
// An empty Sim (no keys at all) reports true vacuously.
func HasSimulation(s Sim) bool {
	for _, image := range s {
		if len(image) == 0 {
			return false
		}
	}
	return true
}

func idSet(ids []uint64) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func union(dst map[uint64]struct{}, ids []uint64) {
	for _, id := range ids {
		dst[id] = struct{}{}
	}
}

func labelSame(a, b graph.Node) bool {
	if a.Label == nil || b.Label == nil {
		return a.Label == b.Label
	}
	return a.Label.Equal(b.Label)
}
