package bounded

import "github.com/katalvlaran/lvlath-sim/graph"

// distanceTable holds all-pairs directed hop-count distances over a
// single graph, built by one BFS per node. Unreachable pairs are
// simply absent.
type distanceTable struct {
	d map[[2]uint64]int
}

// buildDistanceTable runs a BFS from every node of g (level-by-level
// queue, visited set — the same traversal shape the BFS package-level
// traversal in the graph-algorithms corpus uses), recording the
// hop-count from each source to every node it can reach.
func buildDistanceTable(g *graph.Graph) *distanceTable {
	t := &distanceTable{d: make(map[[2]uint64]int)}
	for _, src := range g.Nodes() {
		visited := map[uint64]struct{}{src.ID: {}}
		queue := []uint64{src.ID}
		dist := map[uint64]int{src.ID: 0}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			t.d[[2]uint64{src.ID, cur}] = dist[cur]
			for _, next := range g.Adj(cur) {
				if _, ok := visited[next]; ok {
					continue
				}
				visited[next] = struct{}{}
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
	}
	return t
}

// at returns the hop count from a to b and whether b is reachable
// from a.
func (t *distanceTable) at(a, b uint64) (int, bool) {
	d, ok := t.d[[2]uint64{a, b}]
	return d, ok
}
