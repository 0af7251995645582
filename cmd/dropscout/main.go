package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dropscout/internal/api/v1/router"
	"dropscout/internal/config"
	"dropscout/internal/debug"
	"dropscout/internal/log"
	"dropscout/internal/policy"
	"dropscout/internal/scan"
	"dropscout/internal/service"
	"dropscout/internal/ui"
)

func init() {
	log.InitLogger()
	config.LoadEnv()
}

func main() {
	defer log.Sync()

	cfg := config.AppConfig

	scanner := scan.New(
		cfg.ScanEndpoint,
		cfg.ScanLanguage,
		time.Duration(cfg.ScanTimeoutSec)*time.Second,
		time.Duration(cfg.ScanCacheTTLSec)*time.Second,
	)

	svc := service.New(
		scanner,
		policy.Thresholds{Banner: cfg.BannerThreshold, Overlay: cfg.OverlayThreshold},
		ui.Links{DisputeURL: cfg.DisputeURL, DisclaimerURL: cfg.DisclaimerURL},
		time.Duration(cfg.FetchTimeoutSec)*time.Second,
	)

	r := router.New(svc)

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	metricsServer := &http.Server{
		Addr:              ":8081",
		Handler:           router.NewMetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for interrupt or terminate signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Classifier server
	go func() {
		log.Logger.Info("Server started on :8080")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Pprof only enabled in dev env
	if cfg.IsDev == "true" {
		go func() {
			debug.StartPprof(":6060")
		}()
	}

	// Prometheus server
	go func() {
		log.Logger.Info("Metrics server started on :8081")
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Metrics server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	<-stop
	log.Logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Logger.Info("Server exited successfully")
}
