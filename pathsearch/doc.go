// Package pathsearch finds a least-cost route on a geomap.Map with a
// path-branching, best-first search guided by each node's straight-line
// distance to the goal.
//
// Overview:
//
//   - A Path is one candidate route: committed nodes, a frontier node, the
//     cumulative cost to reach the frontier and the frontier's heuristic.
//   - Path.Advance commits the frontier and moves along every outgoing edge:
//     the first edge moves the path itself, each later edge forks a copy.
//   - The Engine keeps every active path, repeatedly picks the one with the
//     lowest Cost+Distance and advances it, until the picked path's frontier
//     is the goal.
//
// Paths are never merged or pruned: two active paths may share a frontier
// node with different costs. The straight-line heuristic never overestimates,
// so the first path picked at the goal is a least-cost one.
//
// Determinism:
//
//   - Ties on Cost+Distance go to the path enqueued first. Advanced paths are
//     re-enqueued in edge order (the moved path, then its forks).
//
// Storage:
//
//   - Committed nodes live in an append-only arena shared by one engine;
//     a path holds only a reference to its last committed step, so a fork is
//     a constant-size copy.
//
// Termination:
//
//   - An unreachable goal is detected when the engine is built (a breadth-first
//     sweep over the map) and reported as ErrNoPath; without pruning, waiting
//     for the paths to exhaust a dense component can take exponential time.
//   - The explored set holds every node some path has been advanced past. The
//     frontier set is the active paths' frontier nodes minus explored. If it
//     ever empties, every node reachable from the start has been explored and
//     the search fails with ErrNoPath.
//   - Paths whose frontier has no outgoing edges are retired.
//   - geomap.New rejects zero-length roads, so every advance strictly raises a
//     path's cost and no path can circle at a constant score.
//   - WithMaxExpansions bounds the work on maps where the search fans out widely.
//
// Errors:
//
//   - ErrNilMap, ErrNoPath, ErrExpansionLimit, ErrBadMaxExpansions.
//   - geomap.ErrMalformedGraph and geomap.ErrInvalidEndpoint from New and ShortestPath.
package pathsearch
