package pathsearch

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilMap indicates a nil *geomap.Map was passed to NewEngine.
	ErrNilMap = errors.New("pathsearch: map is nil")

	// ErrNoPath indicates every reachable node was explored without reaching the goal.
	ErrNoPath = errors.New("pathsearch: no path exists")

	// ErrExpansionLimit indicates the search stopped after Options.MaxExpansions advances.
	ErrExpansionLimit = errors.New("pathsearch: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative expansion limit.
	ErrBadMaxExpansions = errors.New("pathsearch: MaxExpansions must be non-negative")
)

// Options configures an Engine.
//
// MaxExpansions – stop with ErrExpansionLimit after this many path advances
//
//	(the initial seeding counts as one). 0 means no limit.
//
// Logger        – receives Debug records for every step. Defaults to a discarding logger.
type Options struct {
	MaxExpansions int
	Logger        *slog.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithMaxExpansions bounds the number of advances.
// Panics on a negative value, like other option constructors in this module.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger used for step tracing. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no expansion limit and a silent logger.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result is the outcome of a completed search.
type Result struct {
	// Route lists node indices from start to goal inclusive; nil when not Found.
	Route []int

	// Cost is the cumulative edge cost of Route.
	Cost float64

	// Expanded counts path advances, including the initial seeding.
	Expanded int

	// Found reports whether the goal was reached.
	Found bool
}
