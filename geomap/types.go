package geomap

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for map construction and queries.
var (
	// ErrMalformedGraph indicates the adjacency or coordinate table is inconsistent.
	ErrMalformedGraph = errors.New("geomap: malformed graph")

	// ErrInvalidEndpoint indicates a start or goal index outside the node table.
	ErrInvalidEndpoint = errors.New("geomap: invalid endpoint")

	// ErrNoEdge indicates two consecutive route indices have no stored edge.
	ErrNoEdge = errors.New("geomap: no edge between nodes")
)

// Point is a planar coordinate, X first then Y.
type Point = orb.Point

// Edge is one directional, traversable connection.
// Cost is Distance(From, To) and therefore symmetric whenever the reverse edge exists.
type Edge struct {
	From int     // source node index
	To   int     // destination node index
	Cost float64 // traversal cost, never negative
}

// Node is one intersection of the map.
//
// Distance is the heuristic: Distance(Point, goal.Point).
// Edges are owned by the node and kept in neighbor-list order.
type Node struct {
	Index    int
	Point    Point
	Distance float64
	Edges    []Edge
}

// Description is the raw graph input.
//
// Roads[i] lists the neighbors of intersection i in order; len(Roads) is the
// number of nodes. Intersections maps every index in [0, len(Roads)) to its
// coordinate. Extra coordinates are ignored.
type Description struct {
	Roads         [][]int
	Intersections map[int]Point
}
