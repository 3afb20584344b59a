// Package server wires the query API, the rendered pages and the site's
// static files into one HTTP server mounted under the deployment base path.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cpslab/papersite/internal/basepath"
	"github.com/cpslab/papersite/internal/query"
	"github.com/cpslab/papersite/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	BasePath string // deployment base path, e.g. "/CPS/"
	SiteRoot string // directory served for static files; empty disables them
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the site and its JSON API.
type Server struct {
	cfg        Config
	api        *query.API
	renderer   *site.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. The base path in cfg is normalized.
func New(cfg Config, api *query.API, renderer *site.Renderer) *Server {
	cfg.BasePath = basepath.NewResolver(cfg.BasePath).Base()
	s := &Server{
		cfg:      cfg,
		api:      api,
		renderer: renderer,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.redirectBase)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	prefix := s.prefix()
	if prefix == "" {
		s.registerSite(r)
	} else {
		r.Route(prefix, s.registerSite)
	}

	return r
}

// prefix is the base path without its trailing slash; empty at the root.
func (s *Server) prefix() string {
	return strings.TrimSuffix(s.cfg.BasePath, "/")
}

func (s *Server) registerSite(r chi.Router) {
	query.RegisterRoutes(r, s.api)
	site.RegisterRoutes(r, s.renderer)

	if s.cfg.SiteRoot != "" {
		files := http.StripPrefix(s.prefix(), http.FileServer(http.Dir(s.cfg.SiteRoot)))
		r.Handle("/*", files)
	}
}

// redirectBase sends a request for the base path without its trailing slash
// to the base path proper.
func (s *Server) redirectBase(next http.Handler) http.Handler {
	prefix := s.prefix()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if prefix != "" && r.URL.Path == prefix {
			target := s.cfg.BasePath
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("papersite listening on %s, base path %s", addr, s.cfg.BasePath)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
