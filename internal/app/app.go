package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"msecli/internal/config"
	"msecli/internal/infrastructure"
	"msecli/internal/listing"
	custommiddleware "msecli/internal/middleware"
	"msecli/internal/services"
	handlers "msecli/internal/transport/http"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// Application is the main application container.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Router *chi.Mux
	Server *http.Server

	AnalysisService *services.AnalysisService
	ListingScraper  *listing.Scraper
}

// NewApplication creates an application instance with all dependencies
// wired.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port))

	app := &Application{
		Config:          cfg,
		Logger:          logger,
		AnalysisService: services.NewAnalysisService(logger),
		ListingScraper:  listing.NewScraper(cfg.Listing, logger),
	}

	app.Router = app.setupRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

func (a *Application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))

	analysisHandler := handlers.NewAnalysisHandler(a.AnalysisService, a.Logger, a.Config.Upload.MaxSizeBytes)
	listingHandler := handlers.NewListingHandler(a.ListingScraper, a.Logger)
	healthHandler := handlers.NewHealthHandler(Version)

	r.Route("/api", func(r chi.Router) {
		analysisHandler.RegisterRoutes(r)
		listingHandler.RegisterRoutes(r)
		healthHandler.RegisterRoutes(r)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down",
		slog.Duration("timeout", a.Config.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.Logger.Info("Shutdown complete")
	return nil
}
