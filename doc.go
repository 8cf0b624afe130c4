// Package roadgraph finds least-cost routes over road maps drawn in the plane.
//
// A map is a set of numbered intersections, each with an (x, y) coordinate and
// a list of roads to other intersections. A road costs its straight-line
// length, and the search is guided by the straight-line distance to the goal.
//
// Packages:
//
//	geomap         graph model: Distance rule, nodes, edges, map construction
//	pathsearch     best-first route search (Path, Engine, ShortestPath)
//	dijkstra       reference least-cost oracle over the same maps
//	gridgraph      builds maps from 2D land grids (4- or 8-connected)
//	mapfile        loads maps from HCL or GeoJSON files
//	cmd/roadroute  command-line routing and an HTTP API
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// The unit square above, searched from 0 to 2, yields the route 0 → 1 → 2.
//
//	route, err := pathsearch.ShortestPath(desc, 0, 2)
package roadgraph
