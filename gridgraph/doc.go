// Package gridgraph treats a 2D grid of cells as a road map, so that grid
// worlds can be searched with pathsearch.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are "land" and become intersections at
//     coordinate (x, y); "water" cells are left out.
//   - Land cells are joined to their land neighbors (Conn4 or Conn8), in the
//     fixed offset order N, (NE,) E, (SE,) S, (SW,) W, (NW).
//   - ConnectedComponents lists the land islands.
//
// Costs follow geomap.Distance: 1 between orthogonal neighbors, √2 between
// diagonal ones.
//
// Complexity:
//
//   - ToDescription:       O(W×H×d), Memory: O(W×H + E)   (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoLand: no cell reaches LandThreshold.
package gridgraph
