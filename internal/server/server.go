// Package server exposes the HTTP surface: product queries, the news
// pass-through and health checks.
package server

import (
	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/news"
	"github.com/maicaalmonte/nutricalculator/internal/pipeline"
)

// Server holds the handlers' dependencies.
type Server struct {
	pipeline *pipeline.Service
	news     *news.Client // nil when no news API is configured
	log      *zap.Logger
}

// New constructs a Server.
func New(p *pipeline.Service, n *news.Client, log *zap.Logger) *Server {
	return &Server{pipeline: p, news: n, log: log}
}

// Router builds the chi router with all routes and middleware mounted.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.getHealth)
	r.Get("/api/v1/products", s.getProducts)
	r.Get("/api/v1/news", s.getNews)

	return r
}
