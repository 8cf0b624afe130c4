package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/roadgraph/geomap"
	"github.com/katalvlaran/roadgraph/internal/ctxlog"
	"github.com/katalvlaran/roadgraph/pathsearch"
)

type handlers struct {
	desc          geomap.Description
	maxExpansions int
}

type errorResponse struct {
	Error string `json:"error"`
}

type nodeResponse struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Roads []int   `json:"roads"`
}

// routeRequest uses pointers so a missing field is told apart from 0.
type routeRequest struct {
	Start *int `json:"start"`
	Goal  *int `json:"goal"`
}

type routeResponse struct {
	Route    []int   `json:"route"`
	Cost     float64 `json:"cost"`
	Expanded int     `json:"expanded"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *handlers) listNodes(w http.ResponseWriter, r *http.Request) {
	nodes := make([]nodeResponse, len(h.desc.Roads))
	for i, roads := range h.desc.Roads {
		p := h.desc.Intersections[i]
		nodes[i] = nodeResponse{Index: i, X: p.X(), Y: p.Y(), Roads: append([]int{}, roads...)}
	}

	respondJSON(w, r, http.StatusOK, nodes)
}

func (h *handlers) computeRoute(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())

	var req routeRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Start == nil || req.Goal == nil {
		writeError(w, r, http.StatusBadRequest, "start and goal are required")
		return
	}

	opts := []pathsearch.Option{
		pathsearch.WithLogger(logger),
		pathsearch.WithMaxExpansions(h.maxExpansions),
	}
	e, err := pathsearch.New(h.desc, *req.Start, *req.Goal, opts...)
	if err != nil {
		if errors.Is(err, geomap.ErrInvalidEndpoint) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("failed to build map", "error", err)
		writeError(w, r, http.StatusInternalServerError, "failed to build map")
		return
	}

	res, err := e.Run()
	switch {
	case errors.Is(err, pathsearch.ErrNoPath):
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, pathsearch.ErrExpansionLimit):
		logger.Warn("search aborted", "error", err)
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		logger.Error("search failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "search failed")
		return
	}

	respondJSON(w, r, http.StatusOK, routeResponse{Route: res.Route, Cost: res.Cost, Expanded: res.Expanded})
}
