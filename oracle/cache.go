package oracle

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/lvlath-sim/grerr"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache memoizes three oracle concerns across a run: single node-pair
// predicate answers, node-set-pair (hyperedge) predicate answers, and
// per-hyperedge-pair match tables. All three are keyed by canonical
// string keys (NodePairKey, NodeSetPairKey) so the struct round-trips
// through encoding/json-compatible tooling without custom marshaling.
type Cache struct {
	mu sync.RWMutex

	PredicateNode    map[string]bool             `json:"predicate_node"`
	PredicateNodeSet map[string]bool             `json:"predicate_node_set"`
	MatchTable       map[string]map[uint64]uint64 `json:"match_table"`
}

// New returns an empty Cache, ready to Load or to be queried directly.
func New() *Cache {
	return &Cache{
		PredicateNode:    make(map[string]bool),
		PredicateNodeSet: make(map[string]bool),
		MatchTable:       make(map[string]map[uint64]uint64),
	}
}

// NodePairKey canonicalizes a single node-pair lookup key.
func NodePairKey(x, y uint64) string {
	return strconv.FormatUint(x, 10) + ":" + strconv.FormatUint(y, 10)
}

// NodeSetPairKey canonicalizes a hyperedge-pair lookup key: each side's
// ids are sorted ascending before joining, so the key is independent
// of the caller's iteration order over a node-id set.
func NodeSetPairKey(xs, ys []uint64) string {
	return joinSorted(xs) + "|" + joinSorted(ys)
}

func joinSorted(ids []uint64) string {
	sorted := make([]uint64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}

// LookupPredicateNode returns the memoized node-pair predicate result
// and whether an entry existed.
func (c *Cache) LookupPredicateNode(x, y uint64) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.PredicateNode[NodePairKey(x, y)]
	return v, ok
}

// StorePredicateNode memoizes a node-pair predicate result.
func (c *Cache) StorePredicateNode(x, y uint64, result bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PredicateNode[NodePairKey(x, y)] = result
}

// LookupPredicateNodeSet returns the memoized hyperedge-pair predicate
// result and whether an entry existed.
func (c *Cache) LookupPredicateNodeSet(xs, ys []uint64) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.PredicateNodeSet[NodeSetPairKey(xs, ys)]
	return v, ok
}

// StorePredicateNodeSet memoizes a hyperedge-pair predicate result.
func (c *Cache) StorePredicateNodeSet(xs, ys []uint64, result bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PredicateNodeSet[NodeSetPairKey(xs, ys)] = result
}

// LookupMatch returns the memoized per-hyperedge-pair match table and
// whether an entry existed. The returned map is a copy; mutating it
// does not affect the cache.
func (c *Cache) LookupMatch(xs, ys []uint64) (map[uint64]uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	table, ok := c.MatchTable[NodeSetPairKey(xs, ys)]
	if !ok {
		return nil, false
	}
	cp := make(map[uint64]uint64, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return cp, true
}

// StoreMatch memoizes a per-hyperedge-pair match table, copying it so
// later caller-side mutation cannot alter the cached value.
func (c *Cache) StoreMatch(xs, ys []uint64, table map[uint64]uint64) {
	cp := make(map[uint64]uint64, len(table))
	for k, v := range table {
		cp[k] = v
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.MatchTable[NodeSetPairKey(xs, ys)] = cp
}

// Load reads a Cache document from path, replacing this Cache's
// contents. A missing file is not an error: Load leaves the Cache
// empty, matching a fresh run with nothing memoized yet.
func (c *Cache) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &grerr.CacheIOError{Op: "read", Err: err}
	}

	var loaded Cache
	if err := api.Unmarshal(data, &loaded); err != nil {
		return &grerr.CacheIOError{Op: "unmarshal", Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.PredicateNode = nonNil(loaded.PredicateNode)
	c.PredicateNodeSet = nonNil(loaded.PredicateNodeSet)
	c.MatchTable = loaded.MatchTable
	if c.MatchTable == nil {
		c.MatchTable = make(map[string]map[uint64]uint64)
	}
	return nil
}

func nonNil(m map[string]bool) map[string]bool {
	if m == nil {
		return make(map[string]bool)
	}
	return m
}

// Save writes the Cache's current contents to path as JSON, creating
// or truncating the file.
func (c *Cache) Save(path string) error {
	c.mu.RLock()
	data, err := api.Marshal(c)
	c.mu.RUnlock()
	if err != nil {
		return &grerr.CacheIOError{Op: "marshal", Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &grerr.CacheIOError{Op: "write", Err: err}
	}
	return nil
}

// SaveOrLog implements the "log and continue" teardown policy: a
// failed Save is reported to logger at Error level rather than
// propagated, since a cache rewrite failing at process exit should
// never mask the run's actual result.
func (c *Cache) SaveOrLog(path string, logger *slog.Logger) {
	if err := c.Save(path); err != nil {
		logger.Error("oracle cache save failed", "path", path, "error", fmt.Sprint(err))
	}
}
