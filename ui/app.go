// Package ui serves the population over a read-only JSON API.
package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"statline/app"
	"statline/internal"
)

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	service *app.PopulationService
	logger  *internal.Logger
	config  Config
}

// Config holds HTTP application configuration
type Config struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewApp wires the router around service.
func NewApp(service *app.PopulationService, config Config, logger *internal.Logger) *App {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"*"}
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}

	a := &App{
		router:  chi.NewRouter(),
		service: service,
		logger:  logger.With("http"),
		config:  config,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Timeout(a.config.RequestTimeout))
	a.router.Use(middleware.Compress(5))

	a.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/population", a.handlePopulation)

		r.Get("/players", a.handleListPlayers)
		r.Get("/players/{id}", a.handleGetPlayer)
		r.Get("/players/{id}/similar", a.handleSimilarPlayers)
		r.Get("/players/{id}/projection", a.handleProjection)
		r.Get("/players/{id}/percentile", a.handlePercentile)

		r.Get("/teams", a.handleListTeams)
		r.Get("/teams/{code}", a.handleGetTeam)
		r.Get("/teams/{code}/roster", a.handleRoster)

		r.Get("/statistics/leaders", a.handleLeaders)
		r.Get("/statistics/league-averages", a.handleLeagueAverages)

		r.Get("/compare", a.handleCompare)
		r.Get("/compare/report", a.handleCompareReport)

		r.Get("/export", a.handleExport)
	})
}
