// Package geomap builds the immutable, planar road map searched by pathsearch.
//
// What:
//
//   - A Description is the raw input: for every intersection index, the ordered
//     list of neighbor indices (Roads) and a 2D coordinate (Intersections).
//   - New turns a Description into a Map: a dense node table in which every Node
//     carries its heuristic distance to the goal and owns its outgoing Edges,
//     each with a precomputed traversal cost.
//
// Distance rule:
//
//	d(p, q) = 0            if p == q
//	        = |y1 - y2|    if x1 == x2
//	        = |x1 - x2|    if y1 == y2
//	        = √(Δx² + Δy²) otherwise
//
// The axis-aligned branches are taken before the Euclidean one on purpose;
// every cost and heuristic in the package goes through Distance.
//
// Ordering:
//
//   - Nodes keep input index order.
//   - Edges keep neighbor-list order. pathsearch extends a path in place along
//     the first edge and forks on every later one, so this order is observable.
//
// Errors:
//
//   - ErrMalformedGraph:  empty input, missing or non-finite coordinate, a road
//     that references an unknown intersection, or a road of zero length
//     (a self-loop, or two intersections at the same coordinate).
//   - ErrInvalidEndpoint: start or goal outside [0, n).
//   - ErrNoEdge:          RouteCost was given two consecutive indices that are
//     not connected by a stored edge.
//
// Complexity:
//
//   - New: O(V + E) time and memory.
package geomap
