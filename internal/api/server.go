// Package api serves the layout engine over HTTP: POST a participant
// model, get back a computed layout as JSON.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reactome-tools/reaction-layout/pkg/cache"
	"github.com/reactome-tools/reaction-layout/pkg/layout"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

// Server serves the layout HTTP API.
type Server struct {
	dag     *onto.DAG
	store   cache.Cache
	keyer   cache.Keyer
	treeTTL time.Duration
	server  *http.Server
}

// Config configures a Server.
type Config struct {
	Addr    string
	DAG     *onto.DAG
	Cache   cache.Cache
	Keyer   cache.Keyer
	TreeTTL time.Duration
}

// NewServer builds a Server and its route table.
func NewServer(cfg Config) *Server {
	s := &Server{dag: cfg.DAG, store: cfg.Cache, keyer: cfg.Keyer, treeTTL: cfg.TreeTTL}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/v1/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/v1/layouts", s.handleComputeLayout)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8090"
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
	return s
}

// Start runs the HTTP server, blocking until it stops.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	in, err := layout.ReadInput(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var source layout.OntologySource = s.dag
	if s.store != nil {
		source = onto.NewCachingSource(s.dag, s.store, s.keyer, "http", s.treeTTL)
	}

	result, err := layout.Compute(r.Context(), in, source)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Layout-Id", uuid.NewString())
	if err := layout.WriteLayout(result, w); err != nil {
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
