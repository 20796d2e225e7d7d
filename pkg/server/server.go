// Package server exposes parsing, sorting and rendering of forests
// over a small HTTP API, with optional persistence of saved forests.
//
// Routes:
//
//	POST   /api/parse                parse (and optionally sort) notation
//	POST   /api/forests              save a notation document
//	GET    /api/forests              list saved forests
//	GET    /api/forests/{id}         fetch a document with its parsed forest
//	DELETE /api/forests/{id}         delete a document
//	GET    /api/forests/{id}/render  render a saved forest (text, json, dot, svg, png)
//	GET    /healthz                  liveness probe
//
// SVG and PNG artifacts are cached per notation and format, so
// repeated renders of an unchanged document hit the cache.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/mvoggen/grove/pkg/cache"
	"github.com/mvoggen/grove/pkg/store"
)

// renderTTL bounds how long rendered artifacts stay cached.
const renderTTL = 24 * time.Hour

// Server is the grove HTTP API. Create one with [New]; the zero value
// is not usable.
type Server struct {
	logger *log.Logger
	store  store.Store
	cache  cache.Cache
	router chi.Router
}

// New assembles a server from its collaborators. A nil store falls
// back to an in-memory store and a nil cache disables artifact
// caching, so tests and single-shot usage need no setup.
func New(logger *log.Logger, st store.Store, c cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	if c == nil {
		c = cache.NewNullCache()
	}

	s := &Server{logger: logger, store: st, cache: c}

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Route("/forests", func(r chi.Router) {
			r.Post("/", s.handleSave)
			r.Get("/", s.handleList)
			r.Get("/{id}", s.handleGet)
			r.Delete("/{id}", s.handleDelete)
			r.Get("/{id}/render", s.handleRender)
		})
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("Listening on %s", addr)
	return http.ListenAndServe(addr, s)
}

// requestLogger logs one line per request with method, path, status
// and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
