// Command roadroute finds a least-cost route over a planar road map, or
// serves route search over HTTP when -serve is given.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/geomap"
	"github.com/katalvlaran/roadgraph/internal/config"
	"github.com/katalvlaran/roadgraph/internal/demomap"
	"github.com/katalvlaran/roadgraph/internal/server"
	"github.com/katalvlaran/roadgraph/mapfile"
	"github.com/katalvlaran/roadgraph/pathsearch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Getenv); err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic; the route goes to outW and logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string, getenv func(string) string) error {
	cfg, shouldExit, err := config.Parse(args, outW, getenv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := cfg.Logger(logW)

	rm, err := loadMap(cfg)
	if err != nil {
		return err
	}
	desc, start, goal := rm.desc, rm.start, rm.goal
	logger.Debug("map loaded", "path", cfg.MapPath, "intersections", len(desc.Roads))

	if cfg.ServeAddr != "" {
		router := server.NewRouter(logger, server.Dependencies{Map: desc, MaxExpansions: cfg.MaxExpansions})
		return server.Run(ctx, cfg.ServeAddr, router, logger)
	}

	if err := rm.sameIsland(logger); err != nil {
		return err
	}

	e, err := pathsearch.New(desc, start, goal,
		pathsearch.WithLogger(logger),
		pathsearch.WithMaxExpansions(cfg.MaxExpansions),
	)
	if err != nil {
		return err
	}
	res, err := e.Run()
	if err != nil {
		return fmt.Errorf("route %d -> %d: %w", start, goal, err)
	}

	hops := make([]string, len(res.Route))
	for i, n := range res.Route {
		hops[i] = strconv.Itoa(n)
	}
	fmt.Fprintf(outW, "route: %s\n", strings.Join(hops, " -> "))
	fmt.Fprintf(outW, "cost: %.6f (expanded %d)\n", res.Cost, res.Expanded)

	if cfg.Compare {
		return compare(logger, desc, start, goal, res.Cost)
	}

	return nil
}

// routeMap is a loaded map with its resolved endpoints.
// islands is set for grid maps only and gives each intersection's island.
type routeMap struct {
	desc        geomap.Description
	start, goal int
	islands     []int
}

// loadMap returns the configured map and endpoints.
// Without -map the demonstration map is used, and its endpoints fill in
// whichever of -start and -goal were not given.
func loadMap(cfg *config.Config) (routeMap, error) {
	if cfg.MapPath == "" {
		rm := routeMap{desc: demomap.Description(), start: cfg.Start, goal: cfg.Goal}
		if rm.start < 0 {
			rm.start = demomap.Start
		}
		if rm.goal < 0 {
			rm.goal = demomap.Goal
		}
		return rm, nil
	}

	if mapfile.IsGrid(cfg.MapPath) {
		g, err := mapfile.LoadGrid(cfg.MapPath)
		if err != nil {
			return routeMap{}, err
		}
		return routeMap{desc: g.Description, start: cfg.Start, goal: cfg.Goal, islands: g.Islands()}, nil
	}

	desc, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		return routeMap{}, err
	}

	return routeMap{desc: desc, start: cfg.Start, goal: cfg.Goal}, nil
}

// sameIsland fails with pathsearch.ErrNoPath when a grid map's start and goal
// lie on different islands. Out-of-range endpoints are left to pathsearch.
func (rm routeMap) sameIsland(logger *slog.Logger) error {
	n := len(rm.islands)
	if n == 0 || rm.start < 0 || rm.goal < 0 || rm.start >= n || rm.goal >= n {
		return nil
	}
	from, to := rm.islands[rm.start], rm.islands[rm.goal]
	logger.Debug("grid islands", "start_island", from, "goal_island", to)
	if from != to {
		return fmt.Errorf("route %d -> %d: %w: start is on island %d, goal on island %d",
			rm.start, rm.goal, pathsearch.ErrNoPath, from, to)
	}

	return nil
}

// compare logs the Dijkstra cost next to the search cost.
func compare(logger *slog.Logger, desc geomap.Description, start, goal int, cost float64) error {
	m, err := geomap.New(desc, start, goal)
	if err != nil {
		return err
	}
	dist, _, err := dijkstra.Dijkstra(m, dijkstra.Source(start))
	if err != nil {
		return err
	}
	logger.Info("cost comparison",
		"search_cost", cost,
		"dijkstra_cost", dist[goal],
		"optimal", cost-dist[goal] <= 1e-9,
	)

	return nil
}
