// Package httpserver provides the HTTP/HTTPS server for UserHub.
//
// It uses the Go standard library net/http for implementation,
// providing the JSON API endpoints for user and token management.
package httpserver

import (
	"context"
	"net/http"
	"time"
)

// Server represents one HTTP listener.
type Server struct {
	httpServer *http.Server
}

// New creates a new HTTP server bound to addr.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// ListenAndServeTLS starts the HTTPS server.
func (s *Server) ListenAndServeTLS(certFile, keyFile string) error {
	return s.httpServer.ListenAndServeTLS(certFile, keyFile)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
