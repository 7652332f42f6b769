// Package api hosts the gateway's HTTP surface: entrypoint dispatch, the
// well-known registration document, health, and stats.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fightgate/internal/adapters/upstream"
	"fightgate/internal/app"
	"fightgate/internal/app/schema"
	"fightgate/internal/payment"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Dispatch(ctx context.Context, key string, raw map[string]any) (any, error)
	Catalog() []app.Descriptor
	GetStats() map[string]any
}

// Server wires HTTP routes for the gateway API.
type Server struct {
	deps        Dependencies
	baseURL     string
	corsOrigins []string
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithBaseURL sets the externally visible base URL published in the
// registration document.
func WithBaseURL(baseURL string) Option {
	return func(s *Server) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithCORSOrigins sets the origins allowed by the HTTP surface.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// NewServer creates the API server.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:        deps,
		baseURL:     "http://localhost:8080",
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router for the gateway surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", MetricsMiddleware(s.handleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.handleStats, "stats"))
	r.Get("/.well-known/catalog.json", MetricsMiddleware(s.handleCatalog, "catalog"))
	r.Post("/entrypoints/{key}", MetricsMiddleware(s.handleDispatch, "dispatch"))

	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDispatchError maps the gateway error taxonomy onto HTTP statuses.
func writeDispatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrEntrypointNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, schema.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, payment.ErrDeclined):
		writeError(w, http.StatusPaymentRequired, "payment_required", err)
	case errors.Is(err, upstream.ErrUpstream):
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
