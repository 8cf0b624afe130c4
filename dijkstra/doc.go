// Package dijkstra computes exact least-cost distances over a geomap.Map.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to
//     every reachable node in O((V + E) log V) time, using a min-heap with lazy
//     decrease-key.
//   - Edge costs come straight from the map (geomap.Distance between endpoints),
//     so they are non-negative by construction and need no pre-scan.
//
// When to use:
//
//   - As the reference oracle for pathsearch: with a straight-line heuristic the
//     best-first search must return the same cost.
//   - When distances to every node are needed rather than one route.
//
// Key features:
//
//   - ReturnPath: returns a predecessor map; PathTo rebuilds a route from it.
//   - MaxDistance: stops exploring once the closest unsettled node is farther away.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (the heap holds up to E stale entries).
//
// Errors:
//
//   - ErrNilMap, ErrVertexNotFound, ErrBadMaxDistance.
package dijkstra
