package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	authHttp "support-dashboard-service/internal/auth/adapters/http/fiber"
	authJWT "support-dashboard-service/internal/auth/adapters/jwt"
	authUsecase "support-dashboard-service/internal/auth/core/usecase"

	brandsHttp "support-dashboard-service/internal/brands/adapters/http/fiber"
	brandsRepoPg "support-dashboard-service/internal/brands/adapters/postgres"
	brandsUsecase "support-dashboard-service/internal/brands/core/usecase"

	reportsBrands "support-dashboard-service/internal/reports/adapters/brands"
	reportsHttp "support-dashboard-service/internal/reports/adapters/http/fiber"
	reportsReamaze "support-dashboard-service/internal/reports/adapters/reamaze"
	reportsUsecase "support-dashboard-service/internal/reports/core/usecase"

	"support-dashboard-service/internal/platform/config"
	"support-dashboard-service/internal/platform/database"
	"support-dashboard-service/internal/platform/health"
	"support-dashboard-service/internal/platform/logger"
	"support-dashboard-service/internal/platform/metrics"
	"support-dashboard-service/internal/platform/middleware"
	"support-dashboard-service/migrations"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "support-dashboard-service/docs"
)

// @title Support Dashboard API
// @version 1.0
// @description Aggregates Re:amaze helpdesk reports across configured brands.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/login.
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// DB connection
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Postgres)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to postgres")
	}
	defer db.Close()

	if cfg.Postgres.Migrate {
		if err := database.Migrate(ctx, db, migrations.FS); err != nil {
			log.WithError(err).Fatal("failed to apply migrations")
		}
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Repositories
	brandRepository := brandsRepoPg.NewBrandRepository(brandsRepoPg.NewSQLDB(db))

	// Helpdesk client
	helpdesk := reportsReamaze.NewClient(reportsReamaze.Config{
		Domain:                  cfg.Reamaze.Domain,
		Scheme:                  cfg.Reamaze.Scheme,
		Email:                   cfg.Reamaze.Email,
		APIToken:                cfg.Reamaze.APIToken,
		Timeout:                 cfg.Reamaze.Timeout,
		BreakerThreshold:        cfg.Reamaze.BreakerThreshold,
		BreakerCooldown:         cfg.Reamaze.BreakerCooldown,
		BreakerHalfOpenRequests: cfg.Reamaze.BreakerHalfOpenRequests,
	},
		reportsReamaze.WithLogger(log),
		reportsReamaze.WithMetrics(m),
	)

	// Usecases
	manageBrandsUC := brandsUsecase.NewManageBrandsUseCase(brandRepository)

	brandSource := reportsBrands.NewSource(brandRepository)
	reportOpts := []reportsUsecase.Option{
		reportsUsecase.WithLogger(log),
		reportsUsecase.WithMetrics(m),
		reportsUsecase.WithMaxConcurrency(cfg.Reamaze.MaxConcurrency),
	}
	aggregateUC := reportsUsecase.NewAggregateReportsUseCase(brandSource, helpdesk, reportOpts...)
	dashboardUC := reportsUsecase.NewDashboardUseCase(aggregateUC, reportOpts...)
	brandReportUC := reportsUsecase.NewBrandReportUseCase(brandSource, helpdesk, reportOpts...)

	tokens := authJWT.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	loginUC := authUsecase.NewLoginUseCase(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, tokens)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Recovery(log))
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.RequestMetrics(m))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// public endpoints
	app.Get("/health", health.NewHandler(db).Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	requireAuth := authHttp.RequireAuth(tokens)

	// auth endpoints
	authHandler := authHttp.NewAuthHandler(loginUC)
	app.Post("/auth/login", authHandler.Login)
	app.Get("/auth/verify", requireAuth, authHandler.Verify)

	api := app.Group("/api", requireAuth)

	// brand endpoints
	brandsHandler := brandsHttp.NewBrandHandler(manageBrandsUC)
	api.Get("/brands", brandsHandler.ListBrands)
	api.Post("/brands", brandsHandler.CreateBrand)
	api.Get("/brands/:id", brandsHandler.GetBrand)
	api.Delete("/brands/:id", brandsHandler.DeleteBrand)

	// report endpoints
	reportsHandler := reportsHttp.NewReportHandler(aggregateUC, dashboardUC, brandReportUC)
	api.Get("/brands/:id/reports/:metric", reportsHandler.BrandReport)
	api.Get("/channel-summary", reportsHandler.ChannelSummary)
	api.Get("/tags", reportsHandler.Tags)
	api.Get("/staff", reportsHandler.Staff)
	api.Get("/response-time", reportsHandler.ResponseTime)
	api.Get("/volume", reportsHandler.Volume)
	api.Get("/dashboard", reportsHandler.Dashboard)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.WithField("addr", addr).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}
