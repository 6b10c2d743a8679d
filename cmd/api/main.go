package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coupon-report/internal/app"
	"coupon-report/internal/core/config"
	"coupon-report/internal/core/logger"
	"coupon-report/internal/core/server"
	reporthandler "coupon-report/internal/features/reports/handler"

	"go.uber.org/zap"
)

const (
	startupCheckTimeout = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// @title Coupon Report API
// @version 1.0
// @description This API generates coupon usage reports from Nuvemshop orders.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("output_dir", cfg.Report.OutputDir),
	)

	a, err := app.New(cfg)
	if err != nil {
		l.Fatal("Failed to initialize application", zap.Error(err))
	}

	// Initialize Order Adapter and run Health Check
	checkCtx, cancel := context.WithTimeout(context.Background(), startupCheckTimeout)
	err = a.CheckDependencies(checkCtx)
	cancel()
	if err != nil {
		l.Fatal("Dependency Health Check Failed", zap.Error(err))
	}
	l.Info("Nuvemshop connection verified")

	reportHdl := reporthandler.NewReportHandler(a.Runner, a.OutputDir)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/reports", reportHdl.GenerateReport)
	srv.App.Get("/reports/status", reportHdl.GetStatus)
	srv.App.Get("/reports/files/:name", reportHdl.DownloadReport)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sigCh:
		l.Warn("Signal received, shutting down", zap.String("signal", s.String()))
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}

	// A running generation is allowed to finish and publish its status.
	if err := a.Close(); err != nil {
		l.Error("Failed to close application", zap.Error(err))
	}
	l.Info("Application exited")
}
