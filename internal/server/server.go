// Package server implements the knot HTTP API.
//
// The API lets clients upload graph documents and query derived results
// (topological order, cycle reports, DOT output) over HTTP. Graphs are held
// in an in-memory store keyed by server-assigned UUIDs; the service is
// stateless apart from that store and is intended for short-lived local use
// via `knot serve`.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/knotwork/knot/pkg/digraph"
	knoterrors "github.com/knotwork/knot/pkg/errors"
	"github.com/knotwork/knot/pkg/graphio"
	"github.com/knotwork/knot/pkg/observability"
	"github.com/knotwork/knot/pkg/render"
)

// Server serves the knot HTTP API.
type Server struct {
	logger *log.Logger
	store  *Store
}

// New creates a server with an empty graph store.
// A nil logger falls back to log.Default().
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		logger: logger,
		store:  NewStore(),
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/v1/graphs", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleStats)
			r.Delete("/", s.handleDelete)
			r.Get("/order", s.handleOrder)
			r.Get("/cycle", s.handleCycle)
			r.Get("/dot", s.handleDOT)
		})
	})

	return r
}

// logRequests logs method, path, status, and elapsed time per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}

// =============================================================================
// Handlers
// =============================================================================

// createResponse is returned by POST /v1/graphs.
type createResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
}

// statsResponse is returned by GET /v1/graphs/{id}.
type statsResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Vertices int      `json:"vertices"`
	Edges    int      `json:"edges"`
	Cyclic   bool     `json:"cyclic"`
	Sources  []string `json:"sources,omitempty"`
	Sinks    []string `json:"sinks,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var doc graphio.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, http.StatusBadRequest, knoterrors.Wrap(knoterrors.ErrCodeInvalidFormat, err, "malformed graph document"))
		return
	}

	g, err := graphio.ToDigraph(doc)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	id := s.store.Put(doc.Name, g)
	s.logger.Info("graph created", "id", id, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	s.writeJSON(w, http.StatusCreated, createResponse{
		ID:       id,
		Name:     doc.Name,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		s.writeNotFound(w, chi.URLParam(r, "id"))
		return
	}

	var resp statsResponse
	entry.With(func(g *digraph.Digraph[string]) {
		resp = statsResponse{
			ID:       entry.ID,
			Name:     entry.Name,
			Vertices: g.VertexCount(),
			Edges:    g.EdgeCount(),
			Cyclic:   g.HasCycle(),
			Sources:  g.Sources(),
			Sinks:    g.Sinks(),
		}
	})
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		s.writeNotFound(w, chi.URLParam(r, "id"))
		return
	}

	var (
		order []string
		err   error
	)
	start := time.Now()
	entry.With(func(g *digraph.Digraph[string]) {
		order, err = g.TopologicalOrder()
		observability.Graph().OnTraversal(r.Context(), g.VertexCount(), g.EdgeCount(), err != nil, time.Since(start))
	})
	if err != nil {
		var cycle []string
		entry.With(func(g *digraph.Digraph[string]) { cycle = g.Cycle() })
		s.writeJSON(w, http.StatusConflict, errorResponse{
			Code:    string(knoterrors.ErrCodeGraphCycle),
			Message: "graph contains a cycle",
			Cycle:   cycle,
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"order": order})
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		s.writeNotFound(w, chi.URLParam(r, "id"))
		return
	}

	var cycle []string
	entry.With(func(g *digraph.Digraph[string]) { cycle = g.Cycle() })
	if cycle == nil {
		s.writeError(w, http.StatusNotFound, knoterrors.New(knoterrors.ErrCodeNotFound, "graph is acyclic"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"cycle": cycle})
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		s.writeNotFound(w, chi.URLParam(r, "id"))
		return
	}

	var dot string
	entry.With(func(g *digraph.Digraph[string]) {
		dot = render.ToDOT(g, render.Options{HighlightCycle: r.URL.Query().Get("highlight") == "true"})
	})
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(dot))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.Delete(id) {
		s.writeNotFound(w, id)
		return
	}
	s.logger.Info("graph deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Response helpers
// =============================================================================

// errorResponse is the JSON error envelope for all failure responses.
type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Cycle   []string `json:"cycle,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	code := knoterrors.GetCode(err)
	if code == "" {
		code = knoterrors.ErrCodeInternal
	}
	s.writeJSON(w, status, errorResponse{Code: string(code), Message: knoterrors.UserMessage(err)})
}

func (s *Server) writeNotFound(w http.ResponseWriter, id string) {
	s.writeError(w, http.StatusNotFound, knoterrors.New(knoterrors.ErrCodeGraphNotFound, "no graph with id %s", id))
}
