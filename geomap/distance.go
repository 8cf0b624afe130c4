package geomap

import (
	"math"

	"github.com/paulmach/orb/planar"
)

// Distance returns the cost between two coordinates.
// Points sharing an axis value use the absolute difference along the other axis;
// all other pairs use the Euclidean distance.
func Distance(p, q Point) float64 {
	switch {
	case p.Equal(q):
		return 0
	case p.X() == q.X():
		return math.Abs(p.Y() - q.Y())
	case p.Y() == q.Y():
		return math.Abs(p.X() - q.X())
	default:
		return planar.Distance(p, q)
	}
}
