package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpapi "github.com/aussiebroadwan/propcloud/internal/propcloud/http"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/mail"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
	"github.com/aussiebroadwan/propcloud/internal/propcloud/store/drivers/sqldb"
	"github.com/aussiebroadwan/propcloud/pkg/cryptox"
	"github.com/aussiebroadwan/propcloud/pkg/slogx"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application wires the store, services and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       *sqldb.Store
	keys     *SessionKeys
	sender   mail.Sender
	notifier *mail.Notifier

	// Services
	waitlistService     *service.WaitlistService
	authService         *service.AuthService
	propertyService     *service.PropertyService
	bookingService      *service.BookingService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService
	housekeepingRunning bool

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

type Option func(*Application)

// WithLogger replaces the logger built from the config.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) { a.logger = logger }
}

// WithMailSender replaces the sender selected by MAIL_DRIVER.
func WithMailSender(s mail.Sender) Option {
	return func(a *Application) { a.sender = s }
}

// New creates an Application with all dependencies initialized. The
// database is migrated before New returns.
func New(cfg Config, opts ...Option) (*Application, error) {
	app := &Application{cfg: cfg}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = slogx.New(slogx.Config{
			Service: "propcloud",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		})
	}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.keys = keys

	if err := app.initMail(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run serves HTTP until ctx is cancelled or the server fails, then shuts
// down gracefully.
func (app *Application) Run(ctx context.Context) error {
	app.housekeepingService.Start()
	app.housekeepingRunning = true

	app.logger.Info("propcloud starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown stops the HTTP server, drains pending emails, stops the
// housekeeping worker and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down propcloud...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.notifier.Wait(ctx); err != nil {
		app.logger.Warn("pending emails abandoned", "error", err)
	}

	if app.housekeepingRunning {
		app.housekeepingService.Stop()
		app.housekeepingRunning = false
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("propcloud stopped")
	return nil
}

// OpenStore opens and migrates the configured database.
func OpenStore(cfg Config) (*sqldb.Store, error) {
	db, err := sqldb.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initMail picks the delivery provider. Without credentials for the
// configured driver, emails are skipped.
func (app *Application) initMail() error {
	if app.sender == nil {
		app.sender = newSender(app.cfg)
	}
	if app.sender == nil {
		app.logger.Warn("email delivery disabled", "driver", app.cfg.MailDriver)
	}

	mailer, err := mail.NewMailer(mail.Config{
		From:       mail.Address{Name: app.cfg.MailFromName, Email: app.cfg.MailFromAddress},
		OpsAddress: app.cfg.MailOpsAddress,
		SiteURL:    app.cfg.SiteURL,
	})
	if err != nil {
		return fmt.Errorf("failed to load email templates: %w", err)
	}

	app.notifier = mail.NewNotifier(app.sender, mailer)
	return nil
}

func newSender(cfg Config) mail.Sender {
	switch cfg.MailDriver {
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil
		}
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		})
	default:
		if cfg.SendGridAPIKey == "" {
			return nil
		}
		return mail.NewSendGridSender(cfg.SendGridAPIKey)
	}
}

func (app *Application) initServices() {
	app.waitlistService = &service.WaitlistService{Store: app.db, Notifier: app.notifier}
	app.authService = &service.AuthService{
		Store:      app.db,
		Notifier:   app.notifier,
		Signer:     app.keys.Signer,
		Issuer:     Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.propertyService = &service.PropertyService{Store: app.db}
	app.bookingService = &service.BookingService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.logger,
		httpapi.Options{
			AdminAuthMode:  app.cfg.AdminAuthMode,
			AdminAPIKey:    app.cfg.AdminAPIKey,
			WebRoot:        app.cfg.WebRoot,
			AllowedOrigins: app.cfg.AllowedOrigins,
			SecureCookies:  app.cfg.Secure(),
		},
	)

	router.WaitlistService = app.waitlistService
	router.AuthService = app.authService
	router.PropertyService = app.propertyService
	router.BookingService = app.bookingService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
