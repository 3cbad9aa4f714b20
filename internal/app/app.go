package app

import (
	"context"
	"errors"
	"net/http"

	"family-site-go/internal/config"
	"family-site-go/internal/db"
	authdomain "family-site-go/internal/domain/auth"
	familydomain "family-site-go/internal/domain/family"
	recipesdomain "family-site-go/internal/domain/recipes"
	"family-site-go/internal/metrics"
	"family-site-go/internal/repository/inmemory"
	familyrepo "family-site-go/internal/repository/relational/family"
	recipesrepo "family-site-go/internal/repository/relational/recipes"
	"family-site-go/internal/telemetry"
	"family-site-go/internal/transport/httpserver"
	"family-site-go/internal/transport/httpserver/handler"
	adminhandler "family-site-go/internal/transport/httpserver/handler/admin"
	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
	familyhandler "family-site-go/internal/transport/httpserver/handler/family"
	recipeshandler "family-site-go/internal/transport/httpserver/handler/recipes"
	"family-site-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg           config.Config
	httpServer    *http.Server
	db            *gorm.DB
	shutdownTrace func(context.Context) error
}

func New(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing tracing", "enabled", cfg.OTEL.Enabled)
	shutdownTrace, err := telemetry.Init(ctx, cfg.OTEL)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		_ = shutdownTrace(ctx)
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(ctx, dbConn, cfg.DB.Driver); err != nil {
		_ = db.Close(dbConn)
		_ = shutdownTrace(ctx)
		return nil, err
	}

	log.Info("app: initializing router")
	router := NewRouter(cfg, dbConn, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:           cfg,
		httpServer:    srv,
		db:            dbConn,
		shutdownTrace: shutdownTrace,
	}, nil
}

// NewRouter wires repositories, services and handlers over an open database.
func NewRouter(cfg config.Config, dbConn *gorm.DB, log logger.Logger) http.Handler {
	var (
		routerMetrics   httpserver.Metrics
		recipesRecorder recipesdomain.Recorder
		authRecorder    authdomain.Recorder
	)
	if cfg.MetricsEnabled {
		m := metrics.New()
		routerMetrics = m
		recipesRecorder = m
		authRecorder = m
	}

	recipesService := recipesdomain.NewService(recipesrepo.NewGorm(dbConn), recipesRecorder)
	familyService := familydomain.NewService(familyrepo.NewGorm(dbConn))
	authService := authdomain.NewService(authdomain.Credentials{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, inmemory.NewSessionRegistry(cfg.Admin.SessionTTL), authRecorder)

	if !authService.Configured() {
		log.Warn("app: admin credentials not configured, admin routes will fail")
	}

	handlers := handler.New(
		commonhandler.New(log),
		recipeshandler.New(recipesService, log),
		familyhandler.New(familyService, log),
		adminhandler.New(authService, adminhandler.CookieOptions{
			Secure: cfg.IsProduction(),
			MaxAge: cfg.Admin.SessionTTL,
		}, log),
	)

	return httpserver.NewRouter(cfg, handlers, authService, routerMetrics, log)
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.shutdownTrace != nil {
		errs = append(errs, a.shutdownTrace(ctx))
	}
	if a.db != nil {
		errs = append(errs, db.Close(a.db))
	}
	return errors.Join(errs...)
}
