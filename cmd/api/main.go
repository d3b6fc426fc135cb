package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayasuda/vehicle-catalog/internal/api"
	"github.com/ayasuda/vehicle-catalog/internal/auth"
	"github.com/ayasuda/vehicle-catalog/internal/config"
	"github.com/ayasuda/vehicle-catalog/internal/db"
	"github.com/ayasuda/vehicle-catalog/internal/logger"
	"github.com/ayasuda/vehicle-catalog/internal/metrics"
	"github.com/ayasuda/vehicle-catalog/internal/middleware"
	"github.com/ayasuda/vehicle-catalog/internal/repository/postgres"
	"github.com/ayasuda/vehicle-catalog/internal/services"
	"github.com/ayasuda/vehicle-catalog/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	userSvc := services.NewUserService(repos.Users, tm, repos.AuditLogs, wp)
	segmentSvc := services.NewSegmentService(repos.Segments, repos.AuditLogs, wp)
	brandSvc := services.NewBrandService(repos.Brands, repos.AuditLogs, wp)
	vehicleSvc := services.NewVehicleService(repos.Vehicles, repos.Segments, repos.Brands, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		AuthMW:     middleware.NewAuthMiddleware(tm),
		UserSvc:    userSvc,
		SegmentSvc: segmentSvc,
		BrandSvc:   brandSvc,
		VehicleSvc: vehicleSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
