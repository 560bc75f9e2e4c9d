package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	httpapi "github.com/aussiebroadwan/leasehold/internal/leasehold/http"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the service's dependencies and its HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	gate       *access.Gate

	sessionService      *service.SessionService
	identityService     *service.IdentityService
	bootstrapService    *service.BootstrapService
	propertyService     *service.PropertyService
	invitationService   *service.InvitationService
	tenancyService      *service.TenancyService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New builds an Application from cfg. It loads the pepper, opens and
// migrates the database and generates session keys.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "leasehold",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = keyManager

	app.initMetrics()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves HTTP and runs housekeeping until ctx is cancelled or the
// listener fails, then drains in-flight requests within the grace period.
func (app *Application) Run(ctx context.Context) error {
	app.logger.Info("leasehold starting", "port", app.cfg.Port, "version", BuildVersion)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return app.housekeepingService.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdownServer()
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error("close database", "error", cerr)
		err = errors.Join(err, cerr)
	}

	app.logger.Info("leasehold stopped")
	return err
}

func (app *Application) shutdownServer() error {
	app.logger.Info("draining http server", "grace", app.cfg.ShutdownGracePeriod)

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful shutdown timed out, closing", "error", err)
		return errors.Join(err, app.server.Close())
	}
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	app.logger.Info("database ready", "file", app.cfg.DatabaseFile, "schema_version", version)
	return nil
}

// initMetrics uses a private registry so several Applications can live in
// one process (tests) without duplicate registration panics.
func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)
}

func (app *Application) initServices() {
	app.gate = &access.Gate{Store: app.db, Metrics: app.metrics}

	app.sessionService = &service.SessionService{
		KeyManager: app.keyManager,
		Issuer:     app.cfg.Issuer,
		TTL:        app.cfg.SessionTTL,
	}
	app.identityService = &service.IdentityService{Store: app.db, Gate: app.gate}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}
	app.propertyService = &service.PropertyService{Store: app.db, Gate: app.gate}
	app.invitationService = &service.InvitationService{
		Store:    app.db,
		Gate:     app.gate,
		Sessions: app.sessionService,
		Metrics:  app.metrics,
		BaseURL:  app.cfg.PublicBaseURL,
		TTL:      app.cfg.InvitationTTL,
	}
	app.tenancyService = &service.TenancyService{
		Store:   app.db,
		Gate:    app.gate,
		Metrics: app.metrics,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.metrics,
		app.cfg.HousekeepingInterval,
		app.cfg.InvitationRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Gate = app.gate
	router.Gatherer = app.registry
	router.IdentityService = app.identityService
	router.SessionService = app.sessionService
	router.BootstrapService = app.bootstrapService
	router.PropertyService = app.propertyService
	router.InvitationService = app.invitationService
	router.TenancyService = app.tenancyService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
