package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/config"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/logger"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/storage"
)

const serviceName = "permit-checklist-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	open, err := bootstrap.StoreOpener(cfg.Store)
	if err != nil {
		lg.Fatal("store", zap.Error(err))
	}
	open = bootstrap.WithBlueprintSeed(open, cfg.Store.SeedFile, lg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Logger:      lg,
		Store:       storage.NewLazy(open),
		Resolver:    bootstrap.NewResolver(cfg.Resolver),
		Metrics:     metrics.New(reg),
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
		RateRPS:     cfg.RateLimit.RPS,
		RateBurst:   cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lg.Info("listening",
		zap.String("addr", srv.Addr),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("env", cfg.App.Environment),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
