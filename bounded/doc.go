// Package bounded computes bounded simulation: a relaxation of
// classical simulation where a successor of u need only be matched by
// a node reachable from v within a per-edge bound, rather than by an
// immediate successor of v.
//
// GetBoundedSimulation requires an all-pairs distance oracle over the
// right-hand graph and two derived indices (anc, the bounded
// label-equal ancestors of a node; dec, the bounded label-equal
// descendants) built once before refinement begins.
package bounded
