package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/roadgraph/geomap"
	"github.com/katalvlaran/roadgraph/internal/ctxlog"
)

// Dependencies collects what the handlers need.
type Dependencies struct {
	// Map is the road map every request searches. It must already be valid.
	Map geomap.Description
	// MaxExpansions bounds each search; 0 is unlimited.
	MaxExpansions int
}

// NewRouter wires the HTTP routes.
func NewRouter(logger *slog.Logger, deps Dependencies) http.Handler {
	h := &handlers{desc: deps.Map, maxExpansions: deps.MaxExpansions}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.HandleFunc("/nodes", h.listNodes).Methods(http.MethodGet)
	r.HandleFunc("/routes", h.computeRoute).Methods(http.MethodPost)
	r.Use(loggingMiddleware(logger))

	return r
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With("method", r.Method, "path", r.URL.Path)
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctxlog.WithLogger(r.Context(), reqLogger)))
			reqLogger.Info("request completed",
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		ctxlog.FromContext(r.Context()).Debug("write response failed", "status", status, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respondJSON(w, r, status, errorResponse{Error: msg})
}
