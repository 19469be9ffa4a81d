// Package simulation computes classical simulation relations between
// directed labeled graphs: a relation S such that (u,v) ∈ S implies u
// and v share a label and every successor of u is matched by some
// simulated successor of v.
//
// Three operations are provided: GetSimulation (intra-graph, greatest
// simulation of a graph into itself), GetSimulationInter (inter-graph,
// Henzinger-Henzinger-Kopke remove-set refinement), and
// GetSimulationNaive (inter-graph, straightforward fixed-point
// refinement). The two inter-graph algorithms compute the same
// relation; GetSimulationInter does less work to get there.
//
// Errors: none of these operations fail — a simulation that refines to
// the empty relation for some node is a valid, reportable result, not
// an error. Use HasSimulation to test for that outcome.
package simulation
