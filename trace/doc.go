// Package trace records and replays the refinement events emitted by
// the semantic-cluster hyper-simulation variant: when a candidate pair
// is rejected at initialization by the first cluster checked, or
// deleted during refinement, the cluster responsible and the id-pair
// evidence against it are appended to a Log in causal (insertion) order.
//
// A Log round-trips through WriteTo/ReadFrom as a sequence of
// length-prefixed, CRC32-checked encoding/gob records, one per Event.
// The serialized form carries no run identifier: two runs over
// identical input produce byte-identical trace files.
package trace
