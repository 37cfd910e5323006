// Package handler provides HTTP request handlers for UserHub.
//
// This package implements the JSON API endpoints for user account and
// authentication token management, plus the ping and hello utility
// routes.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yndnr/userhub-go/internal/core/service"
	"github.com/yndnr/userhub-go/internal/telemetry/logger"
)

// Config holds the dependencies of the Handler.
type Config struct {
	Users  *service.UserService
	Tokens *service.TokenService
	Logger logger.Logger

	// Metrics, when non-nil, is served at /metrics.
	Metrics http.Handler
}

// Handler dispatches requests to the resource handlers.
//
// The route table is built once at construction and never mutated;
// lookup happens on the request path with leading and trailing slashes
// trimmed, so /users, users and /users/ are the same route.
type Handler struct {
	users  *service.UserService
	tokens *service.TokenService
	logger logger.Logger
	routes map[string]http.HandlerFunc
}

// New creates a new Handler with the given services.
func New(cfg *Config) *Handler {
	h := &Handler{
		users:  cfg.Users,
		tokens: cfg.Tokens,
		logger: cfg.Logger,
	}
	if h.logger == nil {
		h.logger = logger.Default()
	}

	routes := map[string]http.HandlerFunc{
		"ping":   h.handlePing,
		"hello":  h.handleHello,
		"users":  h.handleUsers,
		"tokens": h.handleTokens,
	}
	if cfg.Metrics != nil {
		routes["metrics"] = cfg.Metrics.ServeHTTP
	}
	h.routes = routes

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	route, ok := h.routes[path]
	if !ok {
		h.writeError(w, http.StatusNotFound, "not found")
		return
	}
	route(w, r)
}

// writeJSON writes a JSON response. A nil payload becomes an empty
// object, never an empty body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	if payload == nil {
		payload = struct{}{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response body of the form {"error": "..."}.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// methodNotAllowed rejects methods outside the resource's contract.
func (h *Handler) methodNotAllowed(w http.ResponseWriter) {
	h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
