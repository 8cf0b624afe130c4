// Package config turns command-line flags and ROADROUTE_* environment
// variables into a validated Config, and builds the process logger from it.
package config
