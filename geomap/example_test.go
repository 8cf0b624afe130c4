package geomap_test

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/geomap"
)

// ExampleNew builds a three-intersection map and prints the precomputed
// heuristics and edge costs.
//
//	(0,5)
//	  |
//	(0,0)──(3,4)
func ExampleNew() {
	m, err := geomap.New(geomap.Description{
		Roads: [][]int{{1, 2}, {0}, {0}},
		Intersections: map[int]geomap.Point{
			0: {0, 0},
			1: {3, 4},
			2: {0, 5},
		},
	}, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < m.Len(); i++ {
		n := m.Node(i)
		fmt.Printf("node %d h=%.2f", n.Index, n.Distance)
		for _, e := range n.Edges {
			fmt.Printf(" ->%d(%.2f)", e.To, e.Cost)
		}
		fmt.Println()
	}
	// Output:
	// node 0 h=5.00 ->1(5.00) ->2(5.00)
	// node 1 h=0.00 ->0(5.00)
	// node 2 h=3.16 ->0(5.00)
}
