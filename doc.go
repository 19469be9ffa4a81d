// Package graph (lvlath-sim) is your in-memory playground for deciding
// whether one directed labeled graph — or hypergraph — simulates another.
//
// 🚀 What is lvlath-sim?
//
//	A modern, thread-safe, zero-dependency-at-the-core library that brings
//	together:
//
//	  • Graph & hypergraph primitives: frozen nodes/edges built via a
//	    Builder, queried through Adj/AdjInv/OutDegree indices built at Freeze
//	  • Classical simulation: intra- and inter-graph Henzinger-Henzinger-
//	    Kopke refinement, plus a naive fixpoint variant
//	  • Bounded simulation: distance-capped refinement over an anc/dec
//	    index
//	  • Hyper-simulation: naive, soft, and semantic-cluster variants over
//	    externally supplied predicate/match/cluster oracles
//	  • A binary trace log for replaying cluster-variant decisions
//	  • A one-shot tee logger and a JSON-backed oracle memoization cache
//
// ✨ Why choose lvlath-sim?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Rock-solid           — every refinement loop runs to a fixpoint,
//     except bounded simulation, which returns the empty relation as
//     soon as an image empties; no partial results
//   - Extensible           — bring your own type/predicate/match/cluster
//     oracles; the algorithms never assume a concrete label scheme
//   - Deterministic        — the cluster hyper-simulation variant emits
//     byte-identical trace logs across repeated runs on the same input
//
// Under the hood, everything is organized under task-scoped subpackages:
//
//	graph/     — Node, Edge, Graph, Hypergraph & the Builder that freezes them
//	simulation/ — classical (intra/inter-graph) and naive fixpoint simulation
//	bounded/   — distance-bounded simulation and its BFS distance oracle
//	hypersim/  — naive, soft & semantic-cluster hyper-simulation
//	trace/     — the cluster variant's append-only, checksummed event log
//	grlog/     — process-wide one-shot tee logger (file + stdout)
//	oracle/    — JSON-backed memoization cache for caller-supplied oracles
//	grerr/     — the shared sentinel and wrapped error taxonomy
//
// Quick example, one graph simulating another:
//
//	    A──▶B            X──▶Y
//	    (g1, 2 nodes)    (g2, 2 nodes)
//
//	sim(A) = {X} iff every outgoing edge of A is matched by an outgoing
//	edge of X into a node that, in turn, simulates B.
//
// Dive into DESIGN.md for the grounding behind each package's choices.
//
//	go get github.com/katalvlaran/lvlath-sim
package graph
