package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yndnr/userhub-go/internal/core/service"
	"github.com/yndnr/userhub-go/internal/storage/filestore"
	"github.com/yndnr/userhub-go/internal/telemetry/metric"
)

func newTestRouter(t *testing.T, metrics *metric.Registry) http.Handler {
	t.Helper()

	store, err := filestore.New(filestore.Config{
		BaseDir:     t.TempDir(),
		Collections: []string{service.CollectionUsers, service.CollectionTokens},
	})
	if err != nil {
		t.Fatalf("filestore.New() error = %v", err)
	}

	users := service.NewUserService(store, "test-secret", metrics)
	tokens := service.NewTokenService(store, users, metrics)

	return NewRouter(&RouterConfig{
		UserService:  users,
		TokenService: tokens,
		Metrics:      metrics,
	})
}

func TestNewRouter(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("serves the api", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET /ping status = %d, want 200", rec.Code)
		}
	})

	t.Run("tags responses with a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
		if rec.Header().Get(RequestIDHeader) == "" {
			t.Error("response missing request ID header")
		}
	})

	t.Run("no metrics route without a registry", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET /metrics status = %d, want 404", rec.Code)
		}
	})
}

func TestNewRouter_WithMetrics(t *testing.T) {
	router := newTestRouter(t, metric.NewRegistry())

	// Drive one request through the full chain, then scrape.
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "userhub_http_requests_total") {
		t.Error("scrape output missing request counter")
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	store, err := filestore.New(filestore.Config{
		BaseDir:     t.TempDir(),
		Collections: []string{service.CollectionUsers, service.CollectionTokens},
	})
	if err != nil {
		t.Fatalf("filestore.New() error = %v", err)
	}
	users := service.NewUserService(store, "test-secret", nil)
	tokens := service.NewTokenService(store, users, nil)

	router := NewRouter(&RouterConfig{
		UserService:  users,
		TokenService: tokens,
		RateLimit:    1,
		RateBurst:    1,
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1000"
	router.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1000"
	router.ServeHTTP(second, req)

	if first.Code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", first.Code)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}
