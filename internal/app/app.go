package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/tooldir-backend/internal/adapter/mailer"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/audit"
	blogrepo "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/blog"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/tool"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/cache"
	"github.com/heartmarshall/tooldir-backend/internal/config"
	"github.com/heartmarshall/tooldir-backend/internal/metrics"
	auditsvc "github.com/heartmarshall/tooldir-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/tooldir-backend/internal/service/auth"
	"github.com/heartmarshall/tooldir-backend/internal/service/blog"
	"github.com/heartmarshall/tooldir-backend/internal/service/catalog"
	"github.com/heartmarshall/tooldir-backend/internal/service/dashboard"
	"github.com/heartmarshall/tooldir-backend/internal/service/integrity"
	"github.com/heartmarshall/tooldir-backend/internal/service/moderation"
	"github.com/heartmarshall/tooldir-backend/internal/service/notify"
	"github.com/heartmarshall/tooldir-backend/internal/transport/middleware"
	"github.com/heartmarshall/tooldir-backend/internal/transport/rest"
	"github.com/heartmarshall/tooldir-backend/migrations"
)

const (
	readHeaderTimeout    = 5 * time.Second
	rateLimiterCleanup   = 5 * time.Minute
	readCacheMetricsName = "read"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	store := cache.New(
		cache.WithCapacity(cfg.Cache.Capacity),
		cache.WithObserver(m.CacheObserver(readCacheMetricsName)),
	)

	// Repositories
	txm := postgres.NewTxManager(pool)
	categories := category.New(pool)
	tools := tool.New(pool)
	submissions := submission.New(pool)
	posts := blogrepo.New(pool)
	audits := auditrepo.New(pool)
	users := user.New(pool)

	guard := integrity.NewGuard(categories, tools, submissions)

	// Notifications
	sender, err := mailer.New(cfg.Mail, logger)
	if err != nil {
		return err
	}
	dispatcher := notify.NewDispatcher(logger, sender, m, cfg.Notify)
	dispatcher.Start()

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager)
	catalogService := catalog.NewService(logger, categories, tools, guard, audits, txm, store, cfg.Cache)
	moderationService := moderation.NewService(
		logger, submissions, tools, categories, guard, audits, txm,
		dispatcher, store, m,
		func(id uuid.UUID) string { return cfg.Site.ToolURL(id.String()) },
	)
	blogService := blog.NewService(logger, posts, audits, txm, store, cfg.Cache.PostTTL)
	auditService := auditsvc.NewService(logger, audits)
	dashboardService := dashboard.NewService(logger, submissions, tools, categories, posts)

	limiter := middleware.NewRateLimiter(rateLimiterCleanup)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Limiter:     limiter,
		Tokens:      authService,
		Categories:  categories,
		Observer:    m,
		Gatherer:    reg,
		Health:      rest.NewHealthHandler(pool, store, BuildVersion()),
		Auth:        rest.NewAuthHandler(authService, logger),
		Catalog:     rest.NewCatalogHandler(catalogService, logger),
		Submissions: rest.NewSubmissionHandler(moderationService, logger),
		Blog:        rest.NewBlogHandler(blogService, logger),
		Admin:       rest.NewAdminHandler(auditService, dashboardService, logger),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			_ = dispatcher.Stop(context.Background())
			return fmt.Errorf("http server: %w", err)
		}
	}

	return shutdown(logger, cfg.Server.ShutdownTimeout, srv, dispatcher)
}

// shutdown stops the HTTP server before the dispatcher. Approvals still in
// flight may enqueue notifications until the server has drained.
func shutdown(logger *slog.Logger, timeout time.Duration, srv *http.Server, dispatcher *notify.Dispatcher) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := dispatcher.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("notify shutdown: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("shutdown incomplete", slog.String("error", err.Error()))
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
