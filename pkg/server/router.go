package server

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	mlerrors "github.com/smartcalis/ml-service/pkg/errors"
	"github.com/smartcalis/ml-service/pkg/serializer"
)

const (
	readyPath   = "/ready"
	metricsPath = "/metrics"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc(readyPath, s.handleReady)
	mux.Handle(metricsPath, promhttp.Handler())

	// Application endpoints with middleware
	for path, h := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(h))
	}

	var handler http.Handler = s.corsMiddleware(mux)

	if s.config.Tracing {
		handler = otelhttp.NewHandler(handler, s.config.Name,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}

	return handler
}

// corsMiddleware applies CORS only to requests under the configured prefix.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	if len(s.config.CORSOrigins) == 0 {
		return next
	}

	c := cors.New(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-API-Version"},
		MaxAge:         600,
	})
	withCORS := c.Handler(next)
	prefix := s.config.CORSPathPrefix

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if prefix == "" || strings.HasPrefix(r.URL.Path, prefix) {
			withCORS.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// routes returns the sorted list of exposed paths.
func (s *Server) routes() []string {
	routes := []string{readyPath, metricsPath}
	for path := range s.config.Handlers {
		if path == "/" {
			continue
		}
		routes = append(routes, path)
	}
	sort.Strings(routes)
	return routes
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, mlerrors.ErrCodeNotFound,
			"Resource not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, mlerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
