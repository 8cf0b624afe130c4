package gridgraph

import "github.com/katalvlaran/roadgraph/geomap"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Offsets run clockwise from north; this order becomes the road order.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and at least LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major cell index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major cell index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToDescription turns the land cells into a geomap.Description.
//
// Land cells are numbered in row-major order; cell (x,y) is placed at
// coordinate (x,y) and lists its land neighbors in offset order. The second
// result maps a cell index (see Index) to its node index.
//
// Returns ErrNoLand if no cell is land.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToDescription() (geomap.Description, map[int]int, error) {
	nodeOf := make(map[int]int)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				nodeOf[gg.Index(x, y)] = len(nodeOf)
			}
		}
	}
	if len(nodeOf) == 0 {
		return geomap.Description{}, nil, ErrNoLand
	}

	d := geomap.Description{
		Roads:         make([][]int, len(nodeOf)),
		Intersections: make(map[int]geomap.Point, len(nodeOf)),
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u, ok := nodeOf[gg.Index(x, y)]
			if !ok {
				continue
			}
			d.Intersections[u] = geomap.Point{float64(x), float64(y)}
			roads := make([]int, 0, len(gg.neighborOffsets))
			for _, off := range gg.neighborOffsets {
				nx, ny := x+off[0], y+off[1]
				if gg.IsLand(nx, ny) {
					roads = append(roads, nodeOf[gg.Index(nx, ny)])
				}
			}
			d.Roads[u] = roads
		}
	}

	return d, nodeOf, nil
}
