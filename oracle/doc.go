// Package oracle provides a JSON-backed memoization cache for the
// opaque node/edge predicate and match oracles hypersim and bounded
// consume. The oracles themselves are out of scope for this module;
// Cache is a reusable helper a caller's own oracle implementation may
// wrap so repeated queries against the same node or hyperedge pair
// return a stable answer instead of re-deriving (or re-randomizing)
// one every call.
//
// Cache is loaded once at construction and rewritten once at
// teardown, guarded throughout by a sync.RWMutex so concurrent lookups
// never race a concurrent store.
package oracle
