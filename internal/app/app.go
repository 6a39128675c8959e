package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"

	"github.com/courseloop/growthplane/config"
	"github.com/courseloop/growthplane/internal/database"
	"github.com/courseloop/growthplane/internal/domain"
	httpHandler "github.com/courseloop/growthplane/internal/http"
	"github.com/courseloop/growthplane/internal/http/middleware"
	"github.com/courseloop/growthplane/internal/repository"
	"github.com/courseloop/growthplane/internal/service"
	"github.com/courseloop/growthplane/pkg/logger"
)

// expired attribution rows are swept on this cadence
const attributionCleanupInterval = 1 * time.Hour

// App owns the wiring of the whole service: database, repositories,
// services, HTTP handlers
type App struct {
	config *config.Config
	logger logger.Logger

	db     *sql.DB
	server *http.Server
	mux    *http.ServeMux

	// Repositories
	personRepo      domain.PersonRepository
	attributionRepo domain.AttributionRepository
	eventRepo       domain.EventRepository
	featuresRepo    domain.PersonFeaturesRepository
	segmentRepo     domain.SegmentRepository

	// Services
	identityService    domain.IdentityService
	attributionService domain.AttributionService
	featureService     domain.FeatureService
	segmentService     domain.SegmentService
	dispatcher         domain.AutomationDispatcher

	cleanupCancel context.CancelFunc
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, log logger.Logger) *App {
	return &App{
		config: cfg,
		logger: log,
		mux:    http.NewServeMux(),
	}
}

// Initialize connects the database and wires every layer
func (a *App) Initialize() error {
	if a.config.Tracing.Enabled {
		trace.ApplyConfig(trace.Config{
			DefaultSampler: trace.ProbabilitySampler(a.config.Tracing.SamplingProbability),
		})
		a.logger.Info("Tracing enabled")
	}
	if err := a.initDatabase(); err != nil {
		return err
	}
	a.initRepositories()
	if err := a.initServices(); err != nil {
		return err
	}
	a.initHandlers()
	return nil
}

func (a *App) initDatabase() error {
	db, err := database.Connect(&a.config.Database, a.config.Tracing.Enabled)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}
	a.db = db
	return nil
}

func (a *App) initRepositories() {
	a.personRepo = repository.NewPersonRepository(a.db)
	a.attributionRepo = repository.NewAttributionRepository(a.db)
	a.eventRepo = repository.NewEventRepository(a.db)
	a.featuresRepo = repository.NewPersonFeaturesRepository(a.db)
	a.segmentRepo = repository.NewSegmentRepository(a.db)
}

func (a *App) initServices() error {
	if a.config.Automation.WebhookEndpoint != "" {
		var webhookClient *http.Client
		if a.config.Tracing.Enabled {
			webhookClient = &http.Client{
				Transport: &ochttp.Transport{},
				Timeout:   10 * time.Second,
			}
		}
		dispatcher, err := service.NewWebhookAutomationDispatcher(
			a.config.Automation.WebhookEndpoint,
			a.config.Automation.WebhookSecret,
			a.config.Automation.MaxAttempts,
			webhookClient,
			a.logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create automation dispatcher: %w", err)
		}
		a.dispatcher = dispatcher
	} else {
		a.dispatcher = service.NewLoggingAutomationDispatcher(a.logger)
	}

	a.identityService = service.NewIdentityService(a.personRepo, a.logger)
	a.attributionService = service.NewAttributionService(a.attributionRepo, a.eventRepo, a.logger)
	a.featureService = service.NewFeatureService(a.personRepo, a.eventRepo, a.featuresRepo, a.logger)
	a.segmentService = service.NewSegmentService(a.segmentRepo, a.featuresRepo, a.personRepo, a.dispatcher, a.logger)
	return nil
}

func (a *App) initHandlers() {
	adminAuth := middleware.NewAuthMiddleware(a.config.Security.JWTSecret).RequireAuth()
	cronAuth := middleware.RequireCronSecret(a.config.Security.CronSecret)

	trackingHandler := httpHandler.NewTrackingHandler(a.attributionService, a.logger)
	identityHandler := httpHandler.NewIdentityHandler(a.identityService, a.attributionService, a.logger)
	featureHandler := httpHandler.NewFeatureHandler(a.featureService, a.featuresRepo, cronAuth, a.logger)
	segmentHandler := httpHandler.NewSegmentHandler(a.segmentService, adminAuth, cronAuth, a.logger)
	eventHandler := httpHandler.NewEventHandler(a.eventRepo, adminAuth, a.logger)

	trackingHandler.RegisterRoutes(a.mux)
	identityHandler.RegisterRoutes(a.mux)
	featureHandler.RegisterRoutes(a.mux)
	segmentHandler.RegisterRoutes(a.mux)
	eventHandler.RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", a.handleHealth)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := a.db.PingContext(r.Context()); err != nil {
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"status":%q,"version":%q}`, status, a.config.Version)
}

// Start runs the HTTP server; blocks until the server stops
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	var handler http.Handler = a.mux
	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
	}
	a.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	cleanupCtx, cancel := context.WithCancel(context.Background())
	a.cleanupCancel = cancel
	go a.runAttributionCleanup(cleanupCtx)

	a.logger.WithField("addr", addr).Info("Server starting")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// runAttributionCleanup periodically deletes attribution rows past their
// expiry
func (a *App) runAttributionCleanup(ctx context.Context) {
	ticker := time.NewTicker(attributionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := a.attributionRepo.DeleteExpired(ctx, time.Now().UTC())
			if err != nil {
				a.logger.WithField("error", err.Error()).Error("Attribution cleanup failed")
				continue
			}
			if deleted > 0 {
				a.logger.WithField("deleted", deleted).Info("Expired attribution rows removed")
			}
		}
	}
}

// Shutdown gracefully stops the server and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	if a.cleanupCancel != nil {
		a.cleanupCancel()
	}
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("database close error: %w", err)
		}
	}
	return nil
}

// Mux exposes the route multiplexer, mostly for tests
func (a *App) Mux() *http.ServeMux {
	return a.mux
}
