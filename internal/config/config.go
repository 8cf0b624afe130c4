package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
// Start and Goal are -1 when not given.
type Config struct {
	MapPath       string
	Start         int
	Goal          int
	ServeAddr     string
	LogLevel      string
	LogFormat     string
	MaxExpansions int
	Compare       bool
}

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultMaxExpansions = 100000
)

// Parse processes args with defaults taken from getenv (os.Getenv in main).
// It returns the Config, whether the program should exit cleanly (help was
// requested), or an *ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("roadroute", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
roadroute - least-cost routes over a planar road map.

Usage:
  roadroute [options]

Without -map the built-in 40-intersection demonstration map is used.
In a .grid map the intersections are the land cells, numbered in row-major order.

Options:
`)
		flagSet.PrintDefaults()
	}

	maxExp, err := intFromEnv(getenv, "ROADROUTE_MAX_EXPANSIONS", defaultMaxExpansions)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	mapFlag := flagSet.String("map", getenv("ROADROUTE_MAP"), "Path to a .hcl, .geojson or .json map file (env ROADROUTE_MAP).")
	startFlag := flagSet.Int("start", -1, "Start intersection index.")
	goalFlag := flagSet.Int("goal", -1, "Goal intersection index.")
	serveFlag := flagSet.String("serve", getenv("ROADROUTE_SERVE"), "Serve the HTTP API on this address instead of routing once (env ROADROUTE_SERVE).")
	logLevelFlag := flagSet.String("log-level", valueOrDefault(getenv, "ROADROUTE_LOG_LEVEL", defaultLogLevel), "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", valueOrDefault(getenv, "ROADROUTE_LOG_FORMAT", defaultLogFormat), "Log output format: 'text' or 'json'.")
	maxExpFlag := flagSet.Int("max-expansions", maxExp, "Abort a search after this many path advances; 0 is unlimited (env ROADROUTE_MAX_EXPANSIONS).")
	compareFlag := flagSet.Bool("compare", false, "Also compute the Dijkstra cost and log it next to the search cost.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxExpFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-expansions: must be non-negative"}
	}
	if *startFlag < -1 || *goalFlag < -1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid start/goal: must be non-negative"}
	}
	if *mapFlag != "" && *serveFlag == "" && (*startFlag < 0 || *goalFlag < 0) {
		return nil, false, &ExitError{Code: 2, Message: "-start and -goal are required with -map"}
	}

	return &Config{
		MapPath:       *mapFlag,
		Start:         *startFlag,
		Goal:          *goalFlag,
		ServeAddr:     *serveFlag,
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		MaxExpansions: *maxExpFlag,
		Compare:       *compareFlag,
	}, false, nil
}

func valueOrDefault(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
