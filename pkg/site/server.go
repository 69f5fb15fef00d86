package site

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	g "maragu.dev/gomponents"

	"github.com/reachx/reach-site/pkg/legal"
	"github.com/reachx/reach-site/pkg/markdown"
	"github.com/reachx/reach-site/pkg/metrics"
	"github.com/reachx/reach-site/web"
)

// Store persists download clicks. It is optional.
type Store interface {
	RecordDownload(ctx context.Context, platform string) (int64, error)
	GetDownloadCounts(ctx context.Context) (map[string]int64, error)
	Health(ctx context.Context) error
}

// Options holds presentation settings
type Options struct {
	ReleaseVersion  string
	DownloadBaseURL string
}

// Server represents the site's HTTP surface
type Server struct {
	opts             Options
	documents        *legal.Fetcher
	renderer         *markdown.Renderer
	store            Store
	router           *mux.Router
	metricsCollector *metrics.Collector
	now              func() time.Time
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewServer creates a new site server. store may be nil.
func NewServer(opts Options, documents *legal.Fetcher, store Store) *Server {
	s := &Server{
		opts:             opts,
		documents:        documents,
		renderer:         markdown.New(),
		store:            store,
		router:           mux.NewRouter(),
		metricsCollector: metrics.NewCollector(store),
		now:              time.Now,
	}

	staticFiles, err := fs.Sub(web.StaticFiles, "static")
	if err != nil {
		// The embed directive guarantees the directory exists
		panic(err)
	}

	// Setup routes
	s.router.HandleFunc("/", s.Home).Methods("GET", "HEAD")
	s.router.HandleFunc("/downloads", s.Downloads).Methods("GET", "HEAD")
	s.router.HandleFunc("/download/{platform}", s.Download).Methods("GET", "HEAD")
	s.router.HandleFunc("/legal", s.LegalIndex).Methods("GET", "HEAD")
	s.router.HandleFunc("/legal/", s.LegalIndex).Methods("GET", "HEAD")
	s.router.HandleFunc("/legal/{slug}", s.LegalDocument).Methods("GET", "HEAD")
	s.router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", staticCache(http.FileServer(http.FS(staticFiles)))),
	).Methods("GET", "HEAD")
	s.router.HandleFunc("/health", s.Health).Methods("GET")
	s.router.HandleFunc("/healthz", s.Health).Methods("GET")
	s.router.Handle("/metrics", s.metricsHandler()).Methods("GET")

	s.router.NotFoundHandler = http.HandlerFunc(s.NotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.NotFound)

	return s
}

// Handler returns the router wrapped in the request middleware.
// Router-level middleware would skip the not-found handler, so the chain
// wraps the router instead.
func (s *Server) Handler() http.Handler {
	return chain(s.router,
		requestID,
		accessLog,
		s.recoverPanic,
	)
}

// Health handles health check requests
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.sendJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"redis":  "disabled",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Health(ctx); err != nil {
		s.sendError(w, http.StatusServiceUnavailable, "Redis unhealthy", err.Error())
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"redis":  "connected",
	})
}

// metricsHandler returns an HTTP handler for Prometheus metrics
// It updates metrics from storage on each scrape to ensure fresh data
func (s *Server) metricsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metricsCollector.UpdateMetrics()
		promhttp.Handler().ServeHTTP(w, r)
	})
}

// render writes a page. The node is rendered into a buffer first so a
// render failure can still produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page g.Node) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": RequestIDFromContext(r.Context()),
			"path":       r.URL.Path,
			"error":      err,
		}).Error("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(buf.Bytes())
	}
}

func (s *Server) year() int {
	return s.now().Year()
}

// Helper methods
func (s *Server) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) sendError(w http.ResponseWriter, status int, error, message string) {
	resp := ErrorResponse{
		Error:   error,
		Message: message,
	}
	s.sendJSON(w, status, resp)
}

func staticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
