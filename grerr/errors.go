// Package grerr collects the sentinel and wrapped error values shared
// across graph, simulation, bounded, hypersim, trace, grlog, and oracle.
//
// Errors:
//
//	ErrDanglingEdge      - Builder.Freeze found an edge referencing an unknown node.
//	ErrOracleUnconfigured - a hypersim run was asked to consult an oracle that was never set.
//	ErrEmptySimulation   - a simulation collapsed to the empty relation.
//	ErrNotImplemented    - the operation is intentionally unimplemented.
package grerr

import (
	"errors"
	"fmt"
)

var (
	// ErrDanglingEdge indicates an edge endpoint does not name a node
	// added to the same Builder.
	ErrDanglingEdge = errors.New("graph: edge references an unknown node")

	// ErrOracleUnconfigured indicates a hyper-simulation run required an
	// oracle (LMatch, LPredicate, TypeOracle, ClusterOracle or DMatch)
	// that the caller left nil.
	ErrOracleUnconfigured = errors.New("hypersim: required oracle is unconfigured")

	// ErrEmptySimulation indicates a simulation refined down to the
	// empty relation; callers that require a witness should treat this
	// as "no simulation exists" rather than an error condition.
	ErrEmptySimulation = errors.New("simulation: relation is empty")

	// ErrNotImplemented marks an operation the source design leaves
	// unimplemented; it is exposed rather than omitted so callers get a
	// stable, typed answer instead of a missing symbol.
	ErrNotImplemented = errors.New("not implemented")
)

// TraceIOError wraps a failure reading or writing a trace.Log, naming
// the failing operation (such as "write record length", "read record
// payload", "verify record checksum") alongside the underlying cause.
type TraceIOError struct {
	Op  string
	Err error
}

func (e *TraceIOError) Error() string {
	return fmt.Sprintf("trace: %s: %v", e.Op, e.Err)
}

func (e *TraceIOError) Unwrap() error { return e.Err }

// CacheIOError wraps a failure loading or saving an oracle.Cache.
type CacheIOError struct {
	Op  string
	Err error
}

func (e *CacheIOError) Error() string {
	return fmt.Sprintf("oracle: %s: %v", e.Op, e.Err)
}

func (e *CacheIOError) Unwrap() error { return e.Err }
