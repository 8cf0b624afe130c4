package mapfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadgraph/geomap"
)

var (
	// ErrUnsupportedFormat indicates a file extension no loader handles.
	ErrUnsupportedFormat = errors.New("mapfile: unsupported format")

	// ErrDecode indicates a map file that could not be decoded.
	ErrDecode = errors.New("mapfile: decode failed")
)

// Load reads the map file at path, choosing the decoder by extension.
func Load(path string) (geomap.Description, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return LoadHCL(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case gridExt:
		g, err := LoadGrid(path)
		if err != nil {
			return geomap.Description{}, err
		}
		return g.Description, nil
	default:
		return geomap.Description{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

const gridExt = ".grid"

// IsGrid reports whether Load would read path as a land grid.
func IsGrid(path string) bool {
	return strings.EqualFold(filepath.Ext(path), gridExt)
}

// record is one decoded intersection, independent of the source format.
type record struct {
	index int
	point geomap.Point
	roads []int
}

// assemble turns records into a validated Description.
// Indices must be unique and dense: n records use exactly 0..n-1.
func assemble(recs []record) (geomap.Description, error) {
	n := len(recs)
	d := geomap.Description{
		Roads:         make([][]int, n),
		Intersections: make(map[int]geomap.Point, n),
	}
	seen := make([]bool, n)
	for _, r := range recs {
		if r.index < 0 || r.index >= n {
			return geomap.Description{}, fmt.Errorf("%w: intersection %d outside [0, %d)", ErrDecode, r.index, n)
		}
		if seen[r.index] {
			return geomap.Description{}, fmt.Errorf("%w: duplicate intersection %d", ErrDecode, r.index)
		}
		seen[r.index] = true
		d.Roads[r.index] = r.roads
		d.Intersections[r.index] = r.point
	}
	if err := d.Validate(); err != nil {
		return geomap.Description{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return d, nil
}

func parseIndex(label string) (int, error) {
	i, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("%w: intersection label %q is not an integer", ErrDecode, label)
	}

	return i, nil
}
