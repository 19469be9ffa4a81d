package hypersim

import (
	"github.com/katalvlaran/lvlath-sim/graph"
	"github.com/katalvlaran/lvlath-sim/grerr"
	"github.com/katalvlaran/lvlath-sim/simulation"
)

// GetHyperSimulationFixpoint is reserved for a future fixpoint-operator
// formulation of hyper-simulation; the source design never completed
// it, so this stub reports grerr.ErrNotImplemented rather than
// disappearing silently from the package surface.
func GetHyperSimulationFixpoint(_, _ *graph.Hypergraph, _ TypeOracle, _ LPredicate, _ LMatch) (simulation.Sim, error) {
	return nil, grerr.ErrNotImplemented
}

// GetHyperSimulationRecursive is reserved for a future recursive
// (top-down, memoized) formulation of hyper-simulation; the source
// design never completed it either.
func GetHyperSimulationRecursive(_, _ *graph.Hypergraph, _ TypeOracle, _ LPredicate, _ LMatch) (simulation.Sim, error) {
	return nil, grerr.ErrNotImplemented
}
