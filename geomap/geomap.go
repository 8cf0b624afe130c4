package geomap

import (
	"fmt"
	"math"
)

// Map is the immutable node table built from a Description.
// It is safe for concurrent reads; nothing mutates it after New returns.
type Map struct {
	nodes []Node
	start int
	goal  int
}

// Validate checks that the description can be turned into a node table.
// Every road must have positive length: self-loops and roads between two
// intersections at the same coordinate are rejected, since a search could
// circle along them forever without its cost growing.
// It does not look at endpoints; New does that once the node count is known.
// Complexity: O(V + E).
func (d Description) Validate() error {
	n := len(d.Roads)
	if n == 0 {
		return fmt.Errorf("%w: no intersections", ErrMalformedGraph)
	}
	for i := 0; i < n; i++ {
		p, ok := d.Intersections[i]
		if !ok {
			return fmt.Errorf("%w: intersection %d has no coordinate", ErrMalformedGraph, i)
		}
		if !finite(p) {
			return fmt.Errorf("%w: intersection %d has non-finite coordinate %v", ErrMalformedGraph, i, p)
		}
	}
	for i, roads := range d.Roads {
		for _, j := range roads {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: road %d→%d references unknown intersection", ErrMalformedGraph, i, j)
			}
			if j == i {
				return fmt.Errorf("%w: road %d→%d is a self-loop", ErrMalformedGraph, i, j)
			}
			if Distance(d.Intersections[i], d.Intersections[j]) == 0 {
				return fmt.Errorf("%w: road %d→%d has zero length", ErrMalformedGraph, i, j)
			}
		}
	}

	return nil
}

// New builds the node table for a search from start to goal.
//
// Every node gets Distance(node, goal) as its heuristic; every edge gets
// Distance(source, destination) as its cost. Node and edge order follow the
// input. Each node receives a freshly allocated edge slice.
//
// Returns ErrMalformedGraph (see Description.Validate) or ErrInvalidEndpoint.
// Complexity: O(V + E) time and memory.
func New(d Description, start, goal int) (*Map, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := len(d.Roads)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d outside [0, %d)", ErrInvalidEndpoint, start, n)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal %d outside [0, %d)", ErrInvalidEndpoint, goal, n)
	}

	goalPoint := d.Intersections[goal]
	nodes := make([]Node, n)
	for i, roads := range d.Roads {
		p := d.Intersections[i]
		edges := make([]Edge, 0, len(roads))
		for _, j := range roads {
			edges = append(edges, Edge{From: i, To: j, Cost: Distance(p, d.Intersections[j])})
		}
		nodes[i] = Node{
			Index:    i,
			Point:    p,
			Distance: Distance(p, goalPoint),
			Edges:    edges,
		}
	}

	return &Map{nodes: nodes, start: start, goal: goal}, nil
}

// Len returns the number of nodes.
func (m *Map) Len() int { return len(m.nodes) }

// Start returns the start node index.
func (m *Map) Start() int { return m.start }

// Goal returns the goal node index.
func (m *Map) Goal() int { return m.goal }

// Node returns the node at index i. It panics if i is out of range, like a slice index.
// The returned node must be treated as read-only.
func (m *Map) Node(i int) *Node { return &m.nodes[i] }

// Nodes returns a deep copy of the node table.
func (m *Map) Nodes() []Node {
	out := make([]Node, len(m.nodes))
	for i, n := range m.nodes {
		n.Edges = append([]Edge(nil), n.Edges...)
		out[i] = n
	}

	return out
}

// Edge returns the first stored edge a→b.
func (m *Map) Edge(a, b int) (Edge, bool) {
	if a < 0 || a >= len(m.nodes) {
		return Edge{}, false
	}
	for _, e := range m.nodes[a].Edges {
		if e.To == b {
			return e, true
		}
	}

	return Edge{}, false
}

// HasEdge reports whether a stored edge a→b exists.
func (m *Map) HasEdge(a, b int) bool {
	_, ok := m.Edge(a, b)
	return ok
}

// RouteCost sums the stored edge costs along consecutive pairs of route.
// A route of zero or one index costs 0.
// Returns ErrNoEdge for the first pair without a stored edge.
func (m *Map) RouteCost(route []int) (float64, error) {
	var total float64
	for k := 1; k < len(route); k++ {
		e, ok := m.Edge(route[k-1], route[k])
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrNoEdge, route[k-1], route[k])
		}
		total += e.Cost
	}

	return total, nil
}

// Reachable reports whether to can be reached from from along stored edges.
// Complexity: O(V + E).
func (m *Map) Reachable(from, to int) bool {
	n := len(m.nodes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	seen := make([]bool, n)
	seen[from] = true
	queue := []int{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == to {
			return true
		}
		for _, e := range m.nodes[u].Edges {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return false
}

// finite reports whether both components of p are finite numbers.
func finite(p Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) && !math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}
