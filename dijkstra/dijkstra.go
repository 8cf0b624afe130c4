package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/roadgraph/geomap"
)

// Dijkstra computes least distances from Options.Source to every node of m.
//
// Returns:
//
//   - dist: node index → least distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the least-cost route to v arrives from u.
//     The source and unreached nodes have no entry.
//   - err:  ErrNilMap or ErrVertexNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(m *geomap.Map, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if m == nil {
		return nil, nil, ErrNilMap
	}
	if cfg.Source < 0 || cfg.Source >= m.Len() {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Prepare state
	V := m.Len()
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make(map[int]float64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, V)
	}

	// 4) Run
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the route src→dst from a predecessor map returned with
// WithReturnPath. It returns nil when dst was not reached from src.
func PathTo(prev map[int]int, src, dst int) []int {
	path := []int{dst}
	for cur := dst; cur != src; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *geomap.Map     // The input map; read-only within Dijkstra.
	options Options         // Configuration options (Source, MaxDistance, ...).
	dist    map[int]float64 // node → current best distance from Source.
	prev    map[int]int     // node → predecessor on the least-cost route.
	visited []bool          // Tracks if a node's distance is final.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +Inf everywhere, dist[Source] = 0 and seeds the heap.
func (r *runner) init() {
	for v := 0; v < r.m.Len(); v++ {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the closest unsettled node and relaxes its edges.
// It stops when the heap empties or the closest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	for _, e := range r.m.Node(u).Edges {
		v := e.To
		newDist := r.dist[u] + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor found.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
