package mapfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/roadgraph/geomap"
)

// hclMapFile is the top-level structure of an HCL map file.
type hclMapFile struct {
	Intersections []*hclIntersection `hcl:"intersection,block"`
}

// hclIntersection is one `intersection "<index>" { ... }` block.
// Roads stays a cty.Value so an empty list literal decodes cleanly.
type hclIntersection struct {
	Index string    `hcl:"index,label"`
	X     float64   `hcl:"x"`
	Y     float64   `hcl:"y"`
	Roads cty.Value `hcl:"roads,optional"`
}

// LoadHCL parses the HCL map file at path.
func LoadHCL(path string) (geomap.Description, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return geomap.Description{}, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrDecode, path, diags)
	}

	return decodeHCL(file)
}

// ParseHCL parses HCL map source; filename is used only in diagnostics.
func ParseHCL(src []byte, filename string) (geomap.Description, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return geomap.Description{}, fmt.Errorf("%w: failed to parse HCL %s: %w", ErrDecode, filename, diags)
	}

	return decodeHCL(file)
}

func decodeHCL(file *hcl.File) (geomap.Description, error) {
	var parsed hclMapFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return geomap.Description{}, fmt.Errorf("%w: %w", ErrDecode, diags)
	}

	recs := make([]record, 0, len(parsed.Intersections))
	for _, b := range parsed.Intersections {
		idx, err := parseIndex(b.Index)
		if err != nil {
			return geomap.Description{}, err
		}
		roads, err := roadsFromCty(b.Roads)
		if err != nil {
			return geomap.Description{}, fmt.Errorf("%w: intersection %d: %w", ErrDecode, idx, err)
		}
		recs = append(recs, record{index: idx, point: geomap.Point{b.X, b.Y}, roads: roads})
	}

	return assemble(recs)
}

// roadsFromCty converts a list or tuple of whole numbers into []int.
// A missing attribute yields no roads.
func roadsFromCty(v cty.Value) ([]int, error) {
	if v.IsNull() {
		return []int{}, nil
	}
	list, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		return nil, err
	}
	roads := []int{}
	if err := gocty.FromCtyValue(list, &roads); err != nil {
		return nil, err
	}

	return roads, nil
}
