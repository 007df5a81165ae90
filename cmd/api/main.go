// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/climabill/backend/internal/admin"
	"github.com/climabill/backend/internal/audit"
	"github.com/climabill/backend/internal/auth"
	"github.com/climabill/backend/internal/compliance"
	"github.com/climabill/backend/internal/config"
	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/dashboard"
	"github.com/climabill/backend/internal/emission"
	"github.com/climabill/backend/internal/health"
	"github.com/climabill/backend/internal/initiative"
	"github.com/climabill/backend/internal/marketplace"
	"github.com/climabill/backend/internal/middleware"
	"github.com/climabill/backend/internal/server"
	"github.com/climabill/backend/internal/supplier"
	"github.com/climabill/backend/internal/tenant"
	"github.com/climabill/backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	generateKeys := flag.Bool("generate-keys", false,
		"generate a new ES256 signing key pair and exit")
	flag.Parse()

	if *generateKeys {
		if err := generateSigningKeys(*configPath); err != nil {
			slog.Error("key generation error", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func generateSigningKeys(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := auth.GenerateKeyPair(
		cfg.JWT.PrivateKeyPath,
		cfg.JWT.PublicKeyPath,
	); err != nil {
		return err
	}

	slog.Info("signing keys written",
		"private_key", cfg.JWT.PrivateKeyPath,
		"public_key", cfg.JWT.PublicKeyPath,
	)
	return nil
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	auditSvc := audit.NewService(audit.NewRepository(db.DB), logger)
	auditHandler := audit.NewHandler(auditSvc)

	calculator := emission.NewCalculator(cfg.Carbon.PricePerTonne)
	emissionRepo := emission.NewRepository(db.DB)
	emissionSvc := emission.NewService(emissionRepo, calculator)
	emissionHandler := emission.NewHandler(emissionSvc)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	tenantRepo := tenant.NewRepository(db.DB)
	tenantSvc := tenant.NewService(db.DB, tenantRepo, userSvc, emissionSvc)
	tenantHandler := tenant.NewHandler(tenantSvc)
	userSvc.BindSeatPolicy(tenantSvc)

	initiativeRepo := initiative.NewRepository(db.DB)
	initiativeSvc := initiative.NewService(initiativeRepo, emissionSvc, calculator)
	initiativeHandler := initiative.NewHandler(initiativeSvc)

	marketplaceRepo := marketplace.NewRepository(db.DB)
	marketplaceSvc := marketplace.NewService(db.DB, marketplaceRepo)
	marketplaceHandler := marketplace.NewHandler(marketplaceSvc)

	supplierRepo := supplier.NewRepository(db.DB)
	supplierSvc := supplier.NewService(supplierRepo)
	supplierHandler := supplier.NewHandler(supplierSvc)

	dashboardHandler := dashboard.NewHandler(emissionSvc, initiativeSvc, tenantSvc)

	complianceSvc := compliance.NewService(tenantSvc, emissionSvc, initiativeSvc)
	complianceHandler := compliance.NewHandler(complianceSvc)

	authSvc := auth.NewService(userSvc, tenantSvc, tenantSvc, jwtManager, auditSvc)
	authHandler := auth.NewHandler(authSvc)

	healthHandler := health.NewHandler(
		health.Check{Name: "database", Pinger: db},
		health.Check{Name: "redis", Pinger: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DB:         db.DB,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)

		// Calculator and marketplace browsing need a valid token but
		// no company binding.
		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			emissionHandler.RegisterCalculatorRoutes(r)
			marketplaceHandler.RegisterRoutes(r)
			complianceHandler.RegisterStandardsRoute(r)
		})

		r.Route("/companies/{companyID}", func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireCompany(auditSvc))
			r.Use(middleware.TieredRateLimiter(
				redis.Client,
				tenantSvc,
				middleware.DefaultPlanLimits,
			))

			tenantHandler.RegisterRoutes(r)
			userHandler.RegisterRoutes(r)
			emissionHandler.RegisterRoutes(r)
			dashboardHandler.RegisterRoutes(r)
			initiativeHandler.RegisterRoutes(r)
			supplierHandler.RegisterRoutes(r)
			marketplaceHandler.RegisterCertificateRoutes(r)
			complianceHandler.RegisterRoutes(r)
			auditHandler.RegisterRoutes(r)
		})

		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
