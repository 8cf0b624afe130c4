package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/gridgraph"
	"github.com/katalvlaran/roadgraph/pathsearch"
)

// ExampleGridGraph_ConnectedComponents lists the land islands of a grid.
// Cells of each island are printed in breadth-first order.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Printf("components: %d\n", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1) (0,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}

// ExampleGridGraph_ToDescription routes around a wall of water.
// With Conn8 the route cuts both corners diagonally.
func ExampleGridGraph_ToDescription() {
	grid := [][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, _ := gridgraph.NewGridGraph(grid, opts)

	d, nodeOf, _ := gg.ToDescription()
	start, goal := nodeOf[gg.Index(0, 0)], nodeOf[gg.Index(0, 2)]
	e, _ := pathsearch.New(d, start, goal)
	r, _ := e.Run()

	for _, n := range r.Route {
		x, y := int(d.Intersections[n][0]), int(d.Intersections[n][1])
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Printf("\ncost=%.3f\n", r.Cost)

	// Output:
	// (0,0) (1,0) (2,1) (1,2) (0,2)
	// cost=4.828
}
