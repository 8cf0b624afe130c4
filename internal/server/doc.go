// Package server exposes route search over HTTP.
//
// Routes:
//
//	GET  /healthz  liveness probe
//	GET  /nodes    every intersection with its coordinate and roads
//	POST /routes   {"start":5,"goal":34} → {"route":[...],"cost":0.59,"expanded":4}
//
// Every request gets a logger in its context (see internal/ctxlog) and one
// "request completed" record when it finishes.
package server
