package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rahulmenon/labtrack-backend/api/routes"
	authsvc "github.com/rahulmenon/labtrack-backend/internal/auth"
	"github.com/rahulmenon/labtrack-backend/internal/equipment"
	"github.com/rahulmenon/labtrack-backend/internal/scanlogs"
	"github.com/rahulmenon/labtrack-backend/pkg/auth/session"
	"github.com/rahulmenon/labtrack-backend/pkg/config"
	"github.com/rahulmenon/labtrack-backend/pkg/db"
	"github.com/rahulmenon/labtrack-backend/pkg/logger"
	"github.com/rahulmenon/labtrack-backend/pkg/metrics"
	"github.com/rahulmenon/labtrack-backend/pkg/migrate"
	"github.com/rahulmenon/labtrack-backend/pkg/qr"
	"github.com/rahulmenon/labtrack-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	equipmentService, err := equipment.NewService(equipment.ServiceParams{
		Repo:        equipment.NewRepo(dbClient.DB()),
		QR:          qr.NewServerGenerator(cfg.QR),
		FrontendURL: cfg.QR.FrontendURL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create equipment service", err)
		os.Exit(1)
	}

	scanLogService, err := scanlogs.NewService(scanlogs.ServiceParams{
		Repo: scanlogs.NewRepo(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create scan log service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		Admin:    cfg.Admin,
		JWT:      cfg.JWT,
		Sessions: sessionManager,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:           cfg,
			Logger:           logg,
			DB:               dbClient,
			Redis:            redisClient,
			Metrics:          httpMetrics,
			MetricsGatherer:  registry,
			EquipmentService: equipmentService,
			ScanLogService:   scanLogService,
			AuthService:      authService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
