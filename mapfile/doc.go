// Package mapfile loads a geomap.Description from a file on disk.
//
// Three formats are understood:
//
//   - HCL (.hcl), one block per intersection:
//
//     intersection "3" {
//     x     = 0.25
//     y     = 0.5
//     roads = [1, 7]
//     }
//
//   - Land grid (.grid), HCL attributes describing a gridgraph.GridGraph.
//     Every land cell becomes an intersection at (x, y):
//
//     connectivity   = 8 # 4 (default) or 8
//     land_threshold = 1 # default 1
//     cells = [
//     [1, 1, 1],
//     [0, 0, 1],
//     ]
//
//   - GeoJSON (.geojson, .json), a FeatureCollection of Point features whose
//     properties carry "index" (number) and "roads" (array of numbers).
//
// Every loader validates its result with geomap.Description.Validate, so a
// successful load can always be handed to geomap.New.
//
// Errors:
//
//   - ErrUnsupportedFormat: Load was given an unknown file extension.
//   - ErrDecode: the file could not be parsed or describes an invalid map.
package mapfile
