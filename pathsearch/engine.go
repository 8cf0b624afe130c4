package pathsearch

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/roadgraph/geomap"
)

// Engine owns the state of one search over a map: the active paths, the
// explored set and the frontier set. It is not safe for concurrent use.
//
// Selection picks the active path with the lowest Cost+Distance. Ties go to
// the path enqueued earliest; an advanced path is re-enqueued behind every
// path already waiting, so equal-score paths take turns.
type Engine struct {
	m       *geomap.Map
	options Options
	log     *slog.Logger
	arena   *arena

	queue pathQueue
	seq   uint64

	explored []bool // explored[i]: node i was advanced past at least once
	onNode   []int  // onNode[i]: active paths whose frontier is i
	pending  int    // active paths whose frontier is not explored

	expanded int
	winner   *Path
	done     bool
	err      error
}

// NewEngine prepares a search from m.Start() to m.Goal().
//
// A single path is created at the start node and advanced once, seeding the
// active set with the start's direct neighbors; the start is then marked
// explored. When start equals goal the engine is done immediately and the
// route is the start alone; when the goal cannot be reached at all the engine
// is done immediately with ErrNoPath.
func NewEngine(m *geomap.Map, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		m:        m,
		options:  cfg,
		log:      cfg.Logger.With("start", m.Start(), "goal", m.Goal()),
		arena:    &arena{},
		explored: make([]bool, m.Len()),
		onNode:   make([]int, m.Len()),
	}
	e.init()

	return e, nil
}

// New builds the map and its engine in one call.
// Construction errors come from geomap.New.
func New(d geomap.Description, start, goal int, opts ...Option) (*Engine, error) {
	m, err := geomap.New(d, start, goal)
	if err != nil {
		return nil, err
	}

	return NewEngine(m, opts...)
}

func (e *Engine) init() {
	root := newPath(e.m, e.arena, e.m.Start())
	if root.frontier == e.m.Goal() {
		e.winner = root
		e.done = true
		e.log.Debug("start is goal")
		return
	}
	e.expand(root)
	if !e.m.Reachable(e.m.Start(), e.m.Goal()) {
		e.fail(ErrNoPath)
	}
}

// Step performs one selection and advance.
//
// It returns done=true once the winning path is recorded or the search has
// failed; further calls return the same outcome. Failures are ErrNoPath when
// no active path has an unexplored frontier, and ErrExpansionLimit when the
// configured limit is reached.
func (e *Engine) Step() (bool, error) {
	if e.done {
		return true, e.err
	}
	// Exhaustion. Once init has confirmed the goal is reachable, some active
	// path always has an unexplored frontier, so this only fires if that
	// bookkeeping is broken; Step must still never pop an empty queue.
	if e.pending == 0 || e.queue.Len() == 0 {
		return e.fail(ErrNoPath)
	}

	it := heap.Pop(&e.queue).(entry)
	p := it.path
	e.untrack(p.frontier)

	if p.frontier == e.m.Goal() {
		e.winner = p
		e.done = true
		e.log.Debug("goal reached", "cost", p.cost, "expanded", e.expanded)
		return true, nil
	}
	if e.options.MaxExpansions > 0 && e.expanded >= e.options.MaxExpansions {
		e.track(it)
		return e.fail(fmt.Errorf("%w: %d advances", ErrExpansionLimit, e.expanded))
	}

	e.expand(p)

	return false, nil
}

// expand advances p, enqueues every resulting path that can still move and
// marks the advanced node explored.
func (e *Engine) expand(p *Path) {
	moved := p.frontier
	next := p.Advance()
	e.expanded++
	e.markExplored(moved)

	if len(e.m.Node(moved).Edges) == 0 {
		e.log.Debug("dead end retired", "node", moved, "cost", p.cost)
		return
	}
	for _, np := range next {
		e.seq++
		e.track(entry{path: np, seq: e.seq})
	}
	e.log.Debug("advanced",
		"node", moved,
		"forks", len(next)-1,
		"active", e.queue.Len(),
		"frontier", e.pending,
	)
}

// Run steps until the search completes.
func (e *Engine) Run() (Result, error) {
	for {
		done, err := e.Step()
		if err != nil {
			return Result{Expanded: e.expanded}, err
		}
		if done {
			return e.result(), nil
		}
	}
}

func (e *Engine) result() Result {
	return Result{
		Route:    e.winner.Route(),
		Cost:     e.winner.cost,
		Expanded: e.expanded,
		Found:    true,
	}
}

func (e *Engine) fail(err error) (bool, error) {
	e.done = true
	e.err = err
	e.log.Debug("search failed", "err", err, "expanded", e.expanded)

	return true, err
}

// track adds it to the active set.
func (e *Engine) track(it entry) {
	heap.Push(&e.queue, it)
	f := it.path.frontier
	e.onNode[f]++
	if !e.explored[f] {
		e.pending++
	}
}

// untrack accounts for a path leaving the active set at frontier f.
func (e *Engine) untrack(f int) {
	e.onNode[f]--
	if !e.explored[f] {
		e.pending--
	}
}

func (e *Engine) markExplored(n int) {
	if e.explored[n] {
		return
	}
	e.explored[n] = true
	e.pending -= e.onNode[n]
}

// Done reports whether the search has finished, successfully or not.
func (e *Engine) Done() bool { return e.done }

// Err returns the failure that ended the search, if any.
func (e *Engine) Err() error { return e.err }

// Winner returns the winning path, or nil before the goal is reached.
func (e *Engine) Winner() *Path { return e.winner }

// Expanded returns the number of advances performed so far.
func (e *Engine) Expanded() int { return e.expanded }

// Paths returns the number of active paths.
func (e *Engine) Paths() int { return e.queue.Len() }

// Frontier returns, in ascending order, the frontier nodes of active paths
// that have not been explored.
func (e *Engine) Frontier() []int {
	var out []int
	for i, c := range e.onNode {
		if c > 0 && !e.explored[i] {
			out = append(out, i)
		}
	}

	return out
}

// Explored returns the explored node indices in ascending order.
func (e *Engine) Explored() []int {
	var out []int
	for i, ok := range e.explored {
		if ok {
			out = append(out, i)
		}
	}

	return out
}
