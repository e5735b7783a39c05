package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/politrend/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/tracker.go -pkg mocks -skip-ensure -fmt goimports . Tracker

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	tracker Tracker
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	mux        *http.ServeMux
	router     *routegroup.Bundle
}

// Tracker is the timeline service behind the API
type Tracker interface {
	Update(ctx context.Context) (domain.UpdateSummary, error)
	Entities(ctx context.Context, filter domain.EntityFilter) ([]*domain.TrackedEntity, error)
	Entity(ctx context.Context, id string) (*domain.TrackedEntity, error)
	Alerts(ctx context.Context, limit int) ([]domain.AlertRecord, error)
	Settings() domain.Settings
	UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Export(ctx context.Context) (domain.Snapshot, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, tracker Tracker, version string, debug bool) *Server {
	mux := http.NewServeMux()
	s := &Server{
		config:  cfg,
		tracker: tracker,
		version: version,
		debug:   debug,
		mux:     mux,
		router:  routegroup.New(mux),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("politrend", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
	s.router.NotFoundHandler(s.notFoundHandler)
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /entities", s.entitiesHandler)
		r.HandleFunc("GET /entities/{id}", s.entityHandler)
		r.HandleFunc("POST /update", s.updateHandler)
		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.putSettingsHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
		r.HandleFunc("GET /export", s.exportHandler)
		r.HandleFunc("GET /alerts", s.alertsHandler)
		r.HandleFunc("GET /rss", s.rssHandler)
	})
}

// routeMethods are the methods used by api routes
var routeMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// notFoundHandler serves the root catch-all. A path registered for other methods gets 405 with
// the Allow header, anything else is 404.
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	var allowed []string
	for _, method := range routeMethods {
		if method == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := s.mux.Handler(alt); pattern != "" && pattern != "/" {
			allowed = append(allowed, method)
		}
	}
	if len(allowed) == 0 {
		renderError(w, r, errors.New("not found"), http.StatusNotFound)
		return
	}
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	renderError(w, r, fmt.Errorf("method %s not allowed", r.Method), http.StatusMethodNotAllowed)
}
