package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/sweetfm/backoffice/internal/backoffice/http"
	"github.com/sweetfm/backoffice/internal/backoffice/mailer"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/internal/backoffice/store/drivers/sqlite"
	"github.com/sweetfm/backoffice/pkg/cryptox"
	"github.com/sweetfm/backoffice/pkg/jwtx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the back-office service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db   store.Store
	keys *jwtx.KeySet

	// Services
	authService         *service.AuthService
	bootstrapService    *service.BootstrapService
	inviteService       *service.InviteService
	directoryService    *service.DirectoryService
	scheduleService     *service.ScheduleService
	leaveService        *service.LeaveService
	announcementService *service.AnnouncementService
	invoiceService      *service.InvoiceService
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
			Service: "backoffice",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := jwtx.LoadOrGenerateKeySet(app.cfg.SessionKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session signing key: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("back-office starting", "port", app.cfg.Port, "version", BuildVersion)

	// Surface the bootstrap token for first-run setup while no accounts exist.
	if bootstrapped, err := app.bootstrapService.IsBootstrapped(context.Background()); err == nil && !bootstrapped {
		app.logger.Info("no accounts exist yet; bootstrap with the configured token",
			"bootstrap_token", app.cfg.BootstrapToken)
	}

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down back-office...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("back-office stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
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

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Keys:       app.keys,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	var m mailer.Mailer = mailer.Noop{}
	if app.cfg.ResendAPIKey != "" {
		m = &mailer.Resend{
			APIKey: app.cfg.ResendAPIKey,
			From:   app.cfg.ResendFrom,
		}
	}
	app.inviteService = &service.InviteService{
		Store:      app.db,
		Mailer:     m,
		AppBaseURL: app.cfg.AppBaseURL,
	}

	app.directoryService = &service.DirectoryService{Store: app.db}
	app.scheduleService = &service.ScheduleService{Store: app.db}
	app.leaveService = &service.LeaveService{Store: app.db}
	app.announcementService = &service.AnnouncementService{Store: app.db}
	app.invoiceService = &service.InvoiceService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.authService.Verifier(),
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.AllowedOrigins,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.BootstrapService = app.bootstrapService
	router.InviteService = app.inviteService
	router.DirectoryService = app.directoryService
	router.ScheduleService = app.scheduleService
	router.LeaveService = app.leaveService
	router.AnnouncementService = app.announcementService
	router.InvoiceService = app.invoiceService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
