// Package metric provides Prometheus metrics for UserHub.
//
// It exposes request counts and latencies plus resource-level counters
// for monitoring account and token activity.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics backed by a dedicated
// Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestsLimited prometheus.Counter

	// Resource metrics
	UsersCreated  prometheus.Counter
	UsersDeleted  prometheus.Counter
	TokensIssued  prometheus.Counter
	TokensRevoked prometheus.Counter
}

// NewRegistry creates a metrics registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userhub",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "userhub",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RequestsLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "userhub",
			Name:      "http_requests_rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		UsersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "userhub",
			Name:      "users_created_total",
			Help:      "User accounts created.",
		}),
		UsersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "userhub",
			Name:      "users_deleted_total",
			Help:      "User accounts deleted.",
		}),
		TokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "userhub",
			Name:      "tokens_issued_total",
			Help:      "Authentication tokens issued.",
		}),
		TokensRevoked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "userhub",
			Name:      "tokens_revoked_total",
			Help:      "Authentication tokens deleted before expiry.",
		}),
	}

	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.RequestsLimited,
		r.UsersCreated,
		r.UsersDeleted,
		r.TokensIssued,
		r.TokensRevoked,
	)

	return r
}

// Handler returns the HTTP handler serving this registry in Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
