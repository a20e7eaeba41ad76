package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bonrecords/app"
	"bonrecords/config"
	"bonrecords/logger"
	"bonrecords/routes"
	"bonrecords/scheduler"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init app", zap.Error(err))
	}
	defer application.Close()

	if err := app.Bootstrap(ctx, application); err != nil {
		baseLogger.Fatal("bootstrap failed", zap.Error(err))
	}

	routes.RegisterRoutes(application.Router, application)

	sched, err := scheduler.NewScheduler(cfg.RefreshCron, application.Records, application.Metrics.AddRefreshed, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      application.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
