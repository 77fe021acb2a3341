// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the interactive research page, a JSON digest endpoint,
// health and Prometheus metrics.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/internal/assistant"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Runner is the part of the assistant the server drives.
type Runner interface {
	Run(ctx context.Context, query string, maxResults int) (types.Digest, error)
	State() assistant.State
}

// Server is the HTTP server for the research page.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	runner     Runner
	ui         types.UIConfig
	gatherer   prometheus.Gatherer
	logger     zerolog.Logger
}

// NewServer wires the router. gatherer backs /metrics; nil disables it.
func NewServer(cfg types.ServerConfig, ui types.UIConfig, runner Runner, gatherer prometheus.Gatherer, logger zerolog.Logger) *Server {
	s := &Server{
		runner:   runner,
		ui:       withUIDefaults(ui),
		gatherer: gatherer,
		logger:   logger.With().Str("component", "http-server").Logger(),
	}
	s.router = s.buildRouter()

	addr := cfg.Address
	if addr == "" {
		addr = ":8501"
	}
	s.httpServer = &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
	}
	return s
}

func withUIDefaults(ui types.UIConfig) types.UIConfig {
	if ui.DefaultQuery == "" {
		ui.DefaultQuery = "Artificial Intelligence"
	}
	if ui.MinResults <= 0 {
		ui.MinResults = 5
	}
	if ui.MaxResults <= 0 {
		ui.MaxResults = 20
	}
	if ui.DefaultMaxResults <= 0 {
		ui.DefaultMaxResults = 10
	}
	return ui
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.showPage)
	r.Post("/", s.runPage)
	r.Get("/healthz", s.healthHandler)
	r.Get("/api/v1/digest", s.digestHandler)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// showPage renders the idle page with default control values.
func (s *Server) showPage(w http.ResponseWriter, _ *http.Request) {
	s.writePage(w, http.StatusOK, s.basePage(s.ui.DefaultQuery, s.ui.DefaultMaxResults))
}

// runPage runs one action with the submitted controls and renders the
// full result once the batch completes.
func (s *Server) runPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		data := s.basePage(s.ui.DefaultQuery, s.ui.DefaultMaxResults)
		data.Error = "invalid form submission"
		s.writePage(w, http.StatusBadRequest, data)
		return
	}

	query := r.PostForm.Get("query")
	n, err := s.parseMaxResults(r.PostForm.Get("max_results"))
	if err != nil {
		data := s.basePage(query, s.ui.DefaultMaxResults)
		data.Error = err.Error()
		s.writePage(w, http.StatusBadRequest, data)
		return
	}

	data := s.basePage(query, n)
	data.Ran = true
	digest, err := s.runner.Run(r.Context(), query, n)
	if err != nil {
		data.Error = "Fetching papers failed: " + err.Error()
		s.writePage(w, http.StatusBadGateway, data)
		return
	}
	data.Digest = digest
	s.writePage(w, http.StatusOK, data)
}

// digestHandler is the JSON counterpart of runPage.
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	if query == "" {
		query = s.ui.DefaultQuery
	}

	raw := q.Get("max_results")
	n := s.ui.DefaultMaxResults
	if raw != "" {
		var err error
		if n, err = s.parseMaxResults(raw); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	digest, err := s.runner.Run(r.Context(), query, n)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, digest)
}

// healthHandler reports liveness and the current action state.
func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"state":  s.runner.State().String(),
	})
}

func (s *Server) parseMaxResults(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("number of papers must be an integer, got %q", raw)
	}
	if n < s.ui.MinResults || n > s.ui.MaxResults {
		return 0, fmt.Errorf("number of papers must be between %d and %d, got %d", s.ui.MinResults, s.ui.MaxResults, n)
	}
	return n, nil
}

func (s *Server) basePage(query string, n int) pageData {
	return pageData{
		Query:      query,
		MaxResults: n,
		MinResults: s.ui.MinResults,
		MaxAllowed: s.ui.MaxResults,
	}
}

func (s *Server) writePage(w http.ResponseWriter, status int, data pageData) {
	body, err := renderPage(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
