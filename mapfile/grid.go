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
	"github.com/katalvlaran/roadgraph/gridgraph"
)

// hclGridFile is the body of a .grid file.
type hclGridFile struct {
	Cells         cty.Value `hcl:"cells"`
	Connectivity  cty.Value `hcl:"connectivity,optional"`
	LandThreshold cty.Value `hcl:"land_threshold,optional"`
}

// Grid is a land grid together with the road map built from it.
type Grid struct {
	*gridgraph.GridGraph

	// Description has one intersection per land cell, numbered in row-major order.
	Description geomap.Description
	// NodeOf maps a cell index (see GridGraph.Index) to its intersection.
	NodeOf map[int]int
}

// LoadGrid parses the .grid file at path.
func LoadGrid(path string) (*Grid, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse grid file %s: %w", ErrDecode, path, diags)
	}

	return decodeGrid(file)
}

// ParseGrid parses .grid source; filename is used only in diagnostics.
func ParseGrid(src []byte, filename string) (*Grid, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse grid %s: %w", ErrDecode, filename, diags)
	}

	return decodeGrid(file)
}

func decodeGrid(file *hcl.File) (*Grid, error) {
	var parsed hclGridFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrDecode, diags)
	}

	cells, err := cellsFromCty(parsed.Cells)
	if err != nil {
		return nil, fmt.Errorf("%w: cells: %w", ErrDecode, err)
	}
	opts := gridgraph.DefaultGridOptions()
	if opts.LandThreshold, err = intOr(parsed.LandThreshold, opts.LandThreshold); err != nil {
		return nil, fmt.Errorf("%w: land_threshold: %w", ErrDecode, err)
	}
	conn, err := intOr(parsed.Connectivity, 4)
	if err != nil {
		return nil, fmt.Errorf("%w: connectivity: %w", ErrDecode, err)
	}
	switch conn {
	case 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrDecode, conn)
	}

	gg, err := gridgraph.NewGridGraph(cells, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	d, nodeOf, err := gg.ToDescription()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &Grid{GridGraph: gg, Description: d, NodeOf: nodeOf}, nil
}

// Islands returns, for every intersection, the index of the land island
// (see GridGraph.ConnectedComponents) it belongs to.
func (g *Grid) Islands() []int {
	islands := make([]int, len(g.NodeOf))
	for id, comp := range g.ConnectedComponents() {
		for _, cell := range comp {
			islands[g.NodeOf[cell]] = id
		}
	}

	return islands
}

func cellsFromCty(v cty.Value) ([][]int, error) {
	rows, err := convert.Convert(v, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, err
	}
	var cells [][]int
	if err := gocty.FromCtyValue(rows, &cells); err != nil {
		return nil, err
	}

	return cells, nil
}

func intOr(v cty.Value, fallback int) (int, error) {
	if v.IsNull() {
		return fallback, nil
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, err
	}

	return n, nil
}
