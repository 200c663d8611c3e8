package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/vcdoor/internal/door/http"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/internal/door/store/drivers/sqlite"
	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/aussiebroadwan/vcdoor/pkg/mailx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the door service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager
	codec      *vcshare.Codec
	metrics    *metrics.Metrics
	mailer     mailx.Sender

	// Services
	tokenService        *service.TokenService
	userService         *service.UserService
	keyService          *service.KeyService
	doorService         *service.DoorService
	bootstrapService    *service.BootstrapService
	seedService         *service.SeedService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "door-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		codec:   vcshare.New(cfg.ShareLength),
		metrics: metrics.New(),
	}

	// Load the pepper up front so a broken pepper file stops startup instead
	// of failing the first login.
	cryptox.SetPepperPath(app.cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitSigningKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	if err := app.initMailer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	if err := app.applySeed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("door service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down door service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("door service stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer picks SMTP delivery when a relay is configured and falls back
// to logging messages.
func (app *Application) initMailer() error {
	if app.cfg.SMTP.Host == "" {
		if app.cfg.EmailValidation {
			app.logger.Warn("email validation enabled without SMTP relay, codes are only logged at debug level")
		}
		app.mailer = mailx.LogSender{Logger: app.logger}
		return nil
	}

	sender, err := mailx.NewSMTPSender(app.cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to configure mail delivery: %w", err)
	}
	app.mailer = sender
	app.logger.Info("smtp mail delivery configured", "host", app.cfg.SMTP.Host, "port", app.cfg.SMTP.Port)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Store:  app.db,
		Keys:   app.keyManager,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}
	app.userService = &service.UserService{
		Store:           app.db,
		Codec:           app.codec,
		Mail:            app.mailer,
		EmailValidation: app.cfg.EmailValidation,
	}
	app.keyService = &service.KeyService{Store: app.db, Codec: app.codec, Metrics: app.metrics}
	app.doorService = &service.DoorService{Store: app.db, Codec: app.codec, Metrics: app.metrics}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Codec: app.codec,
		Token: app.cfg.BootstrapToken,
	}
	app.seedService = &service.SeedService{Store: app.db, Codec: app.codec, Metrics: app.metrics}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.PendingUserTTL,
	)
}

// applySeed loads the seed fixture into an empty database.
func (app *Application) applySeed(ctx context.Context) error {
	if app.cfg.SeedFile == "" {
		return nil
	}

	ctx = slogx.WithContext(ctx, app.logger)
	applied, err := app.seedService.ApplyIfEmpty(ctx, app.cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to apply seed file: %w", err)
	}
	if applied {
		app.logger.Info("seed fixture applied", "file", app.cfg.SeedFile)
	} else {
		app.logger.Info("database not empty, seed fixture skipped", "file", app.cfg.SeedFile)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.KeyService = app.keyService
	router.DoorService = app.doorService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
