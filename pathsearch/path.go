package pathsearch

import "github.com/katalvlaran/roadgraph/geomap"

// step is one committed node of a path lineage.
// parent indexes the previous committed step, or -1 for the first one.
type step struct {
	node   int
	parent int
}

// arena stores committed steps for every path derived from one root.
// Steps are append-only and never rewritten, so paths sharing an arena
// observe each other's appends only as unreachable entries.
type arena struct {
	steps []step
}

func (a *arena) push(node, parent int) int {
	a.steps = append(a.steps, step{node: node, parent: parent})
	return len(a.steps) - 1
}

// Path is one candidate route from the start toward the goal.
//
// It records the committed nodes (as a tail reference into a shared arena),
// the frontier node that has been reached but not yet expanded, the
// cumulative cost of reaching the frontier and the frontier's heuristic
// distance to the goal. Forking copies only these scalars.
//
// Paths that share an arena must be advanced from a single goroutine.
type Path struct {
	m        *geomap.Map
	arena    *arena
	tail     int // last committed step, -1 if none
	length   int // number of committed steps
	frontier int
	cost     float64
	distance float64
}

// NewPath returns a path whose frontier is start and whose committed
// sequence is empty. It panics if start is not a node of m.
func NewPath(m *geomap.Map, start int) *Path {
	return newPath(m, &arena{}, start)
}

func newPath(m *geomap.Map, a *arena, start int) *Path {
	return &Path{
		m:        m,
		arena:    a,
		tail:     -1,
		frontier: start,
		distance: m.Node(start).Distance,
	}
}

// Frontier returns the index of the frontier node.
func (p *Path) Frontier() int { return p.frontier }

// Cost returns the cumulative cost of reaching the frontier.
func (p *Path) Cost() float64 { return p.cost }

// Distance returns the frontier's heuristic distance to the goal.
func (p *Path) Distance() float64 { return p.distance }

// Score is the selection key: Cost + Distance.
func (p *Path) Score() float64 { return p.cost + p.distance }

// Len returns the number of committed nodes.
func (p *Path) Len() int { return p.length }

// Committed returns the committed node indices, oldest first.
// The frontier is not included.
func (p *Path) Committed() []int {
	out := make([]int, p.length)
	for i, s := p.length-1, p.tail; s >= 0; i, s = i-1, p.arena.steps[s].parent {
		out[i] = p.arena.steps[s].node
	}

	return out
}

// Route returns the committed nodes followed by the frontier.
func (p *Path) Route() []int {
	return append(p.Committed(), p.frontier)
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	c := *p
	return &c
}

// Advance commits the frontier and moves along each of its outgoing edges.
//
// The first edge moves p itself; every later edge produces a fork cloned from
// p as it stood right after the commit. The result lists p first, then the
// forks in edge order. When the frontier has no outgoing edges the result is
// just p, with its frontier unchanged.
//
// Advance never modifies any path other than p.
// Complexity: O(d) for a frontier with d outgoing edges.
func (p *Path) Advance() []*Path {
	node := p.m.Node(p.frontier)
	p.tail = p.arena.push(p.frontier, p.tail)
	p.length++

	if len(node.Edges) == 0 {
		return []*Path{p}
	}

	base := *p
	out := make([]*Path, 0, len(node.Edges))
	for i, e := range node.Edges {
		next := p.m.Node(e.To)
		cost := base.cost + e.Cost
		if i == 0 {
			p.moveTo(next, cost)
			out = append(out, p)
			continue
		}
		fork := base
		fork.moveTo(next, cost)
		out = append(out, &fork)
	}

	return out
}

func (p *Path) moveTo(n *geomap.Node, cost float64) {
	p.frontier = n.Index
	p.cost = cost
	p.distance = n.Distance
}
