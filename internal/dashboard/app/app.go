package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/nextnukkad/team-dashboard/internal/dashboard/http"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/nextnukkad/team-dashboard/internal/expo"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/internal/mailer"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the dashboard service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	identity identity.Gateway
	mail     mailer.Mailer
	push     *expo.Client

	// Services
	otpService          *service.OTPService
	teamKeyService      *service.TeamKeyService
	signupService       *service.SignupService
	resetService        *service.ResetService
	sessionService      *service.SessionService
	moderationService   *service.ModerationService
	notifyService       *service.NotifyService
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
			Service: "team-dashboard",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initGateways(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("team dashboard starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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
	app.logger.Info("shutting down team dashboard...")

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

	app.logger.Info("team dashboard stopped")
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

// initGateways wires the outbound clients: identity backend, mailer
// and push.
func (app *Application) initGateways() error {
	upstream := &http.Client{Timeout: app.cfg.UpstreamTimeout}

	if app.cfg.IdentityURL != "" {
		if app.cfg.IdentityServiceKey == "" {
			return fmt.Errorf("IDENTITY_SERVICE_KEY is required when IDENTITY_URL is set")
		}
		app.identity = identity.NewRemote(
			app.cfg.IdentityURL,
			app.cfg.IdentityServiceKey,
			identity.WithHTTPClient(upstream),
		)
		app.logger.Info("identity backend: remote", "url", app.cfg.IdentityURL)
	} else {
		secret := app.cfg.JWTSecret
		if secret == "" {
			// Dev convenience: a random secret means sessions do not
			// survive a restart.
			var b [32]byte
			if _, err := rand.Read(b[:]); err != nil {
				return fmt.Errorf("failed to generate session secret: %w", err)
			}
			secret = base64.RawStdEncoding.EncodeToString(b[:])
			app.logger.Warn("JWT_SECRET not set, using an ephemeral secret")
		}
		app.identity = identity.NewLocal(app.db, []byte(secret), app.cfg.TokenTTL)
		app.logger.Info("identity backend: local")
	}

	resend := mailer.NewResendClient(
		app.cfg.ResendAPIKey,
		app.cfg.MailFrom,
		mailer.WithHTTPClient(upstream),
	)
	if !resend.Configured() {
		app.logger.Warn("RESEND_API_KEY not set, OTP email delivery will fail")
	}
	app.mail = resend
	app.push = expo.NewClient(expo.WithHTTPClient(upstream))

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.otpService = &service.OTPService{
		Store:         app.db,
		Mailer:        app.mail,
		AllowedDomain: app.cfg.AllowedEmailDomain,
		TTL:           app.cfg.OTPTTL,
	}
	app.teamKeyService = &service.TeamKeyService{Store: app.db}
	app.signupService = &service.SignupService{
		Store:    app.db,
		OTP:      app.otpService,
		TeamKeys: app.teamKeyService,
		Identity: app.identity,
	}
	app.resetService = &service.ResetService{
		Store:    app.db,
		OTP:      app.otpService,
		Identity: app.identity,
	}
	app.sessionService = &service.SessionService{
		Store:    app.db,
		Identity: app.identity,
	}
	app.moderationService = &service.ModerationService{Store: app.db}
	app.notifyService = &service.NotifyService{
		Store: app.db,
		Expo:  app.push,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.SignupService = app.signupService
	router.ResetService = app.resetService
	router.SessionService = app.sessionService
	router.ModerationService = app.moderationService
	router.NotifyService = app.notifyService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
