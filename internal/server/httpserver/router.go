// Package httpserver provides the HTTP/HTTPS server for UserHub.
package httpserver

import (
	"net/http"

	"github.com/yndnr/userhub-go/internal/core/service"
	"github.com/yndnr/userhub-go/internal/server/httpserver/handler"
	"github.com/yndnr/userhub-go/internal/telemetry/logger"
	"github.com/yndnr/userhub-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// UserService handles account operations.
	UserService *service.UserService

	// TokenService handles token operations.
	TokenService *service.TokenService

	// Logger for request logging.
	Logger logger.Logger

	// Metrics registry; when set, /metrics is exposed and requests are
	// counted.
	Metrics *metric.Registry

	// RateLimit caps requests per second per client IP. Zero disables
	// limiting.
	RateLimit float64

	// RateBurst is the burst allowance when rate limiting is enabled.
	RateBurst int
}

// NewRouter assembles the API handler with its middleware chain.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(&handler.Config{
		Users:   cfg.UserService,
		Tokens:  cfg.TokenService,
		Logger:  log,
		Metrics: metricsHandler(cfg.Metrics),
	})

	// Outermost first: Recover -> RequestID -> AccessLog -> RateLimit -> Metrics
	middlewares := []Middleware{
		Recover(log),
		RequestID(),
		AccessLog(log),
	}
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit, cfg.RateBurst, cfg.Metrics))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}

	return Chain(h, middlewares...)
}

func metricsHandler(m *metric.Registry) http.Handler {
	if m == nil {
		return nil
	}
	return m.Handler()
}
