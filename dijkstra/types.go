// Package dijkstra defines core types and configuration options
// for Dijkstra's least-cost algorithm on geomap.Map.
//
// Options:
//
//	– Source:      index of the starting node (must be a node of the map).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; nodes beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNilMap          if the provided map pointer is nil.
//	– ErrVertexNotFound  if the source index is not a node of the map.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//
// Example usage:
//
//	dist, prev, err := Dijkstra(m, Source(5), WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[34], PathTo(prev, 5, 34))
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMap indicates that a nil *geomap.Map was passed to Dijkstra.
	ErrNilMap = errors.New("dijkstra: map is nil")

	// ErrVertexNotFound indicates that the source index is not a node of the map.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in map")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node index.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      int     // The index of the source node
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given node index.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose least distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source index.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
