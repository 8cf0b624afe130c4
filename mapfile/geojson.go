package mapfile

import (
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/roadgraph/geomap"
)

// LoadGeoJSON reads the GeoJSON map file at path.
func LoadGeoJSON(path string) (geomap.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geomap.Description{}, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	return ParseGeoJSON(data)
}

// ParseGeoJSON decodes a FeatureCollection of Point features.
func ParseGeoJSON(data []byte) (geomap.Description, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return geomap.Description{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	recs := make([]record, 0, len(fc.Features))
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			return geomap.Description{}, fmt.Errorf("%w: feature %d is not a Point", ErrDecode, i)
		}
		idx, err := wholeNumber(f.Properties["index"])
		if err != nil {
			return geomap.Description{}, fmt.Errorf("%w: feature %d index: %w", ErrDecode, i, err)
		}
		roads, err := roadsFromProperty(f.Properties["roads"])
		if err != nil {
			return geomap.Description{}, fmt.Errorf("%w: feature %d roads: %w", ErrDecode, i, err)
		}
		recs = append(recs, record{index: idx, point: p, roads: roads})
	}

	return assemble(recs)
}

func roadsFromProperty(v interface{}) ([]int, error) {
	if v == nil {
		return []int{}, nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("want array, got %T", v)
	}
	roads := make([]int, len(raw))
	for i, r := range raw {
		n, err := wholeNumber(r)
		if err != nil {
			return nil, err
		}
		roads[i] = n
	}

	return roads, nil
}

// wholeNumber accepts a JSON number with no fractional part that fits in an int32.
func wholeNumber(v interface{}) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("want number, got %T", v)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	if math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%v is out of range", f)
	}

	return int(f), nil
}
