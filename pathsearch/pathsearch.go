package pathsearch

import "github.com/katalvlaran/roadgraph/geomap"

// Search runs a complete search over m.
func Search(m *geomap.Map, opts ...Option) (Result, error) {
	e, err := NewEngine(m, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Run()
}

// ShortestPath builds the map described by d and returns the route found from
// start to goal, both inclusive.
//
// Errors:
//
//   - geomap.ErrMalformedGraph, geomap.ErrInvalidEndpoint from construction.
//   - ErrNoPath when the goal is not reachable from start.
//   - ErrExpansionLimit when WithMaxExpansions is exceeded.
func ShortestPath(d geomap.Description, start, goal int, opts ...Option) ([]int, error) {
	e, err := New(d, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	res, err := e.Run()
	if err != nil {
		return nil, err
	}

	return res.Route, nil
}
