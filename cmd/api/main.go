// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/api/routes"
	"sports-health-centers-api/internal/database"
	"sports-health-centers-api/internal/dataset"
	"sports-health-centers-api/internal/logger"
	"sports-health-centers-api/internal/metrics"
	"sports-health-centers-api/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Environment and configuration
	envErr := godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		slog.Error("config_load_error", "err", err)
		os.Exit(1)
	}

	l := logger.Setup(cfg.Log.Level, cfg.Log.Format)
	if envErr != nil {
		l.Debug("dotenv_skipped", "reason", envErr.Error())
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Dataset: loaded once, frozen for the life of the process
	src, cleanup, err := buildSource(ctx, cfg)
	if err != nil {
		l.Error("dataset_source_error", "source", cfg.Dataset.Source, "err", err)
		os.Exit(1)
	}
	store, err := dataset.Load(ctx, src)
	cleanup()
	if err != nil {
		l.Error("dataset_load_error", "err", err)
		os.Exit(1)
	}
	metrics.DatasetCenters.Set(float64(store.Count()))
	l.Info("dataset_loaded", "source", src.Describe(), "centers", store.Count())

	// 3. HTTP server
	router := routes.SetupRouter(store, cfg, l)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		l.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server_error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	l.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("server_shutdown_error", "err", err)
	}
}

// buildSource returns the configured dataset source and a function releasing
// whatever connection it needed once loading is done.
func buildSource(ctx context.Context, cfg config.Config) (dataset.Source, func(), error) {
	noop := func() {}

	switch cfg.Dataset.Source {
	case config.SourceFile:
		return dataset.FileSource{Path: cfg.Dataset.Path}, noop, nil

	case config.SourceS3:
		downloader, err := s3.NewDownloader(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		return dataset.S3Source{Objects: downloader, Bucket: cfg.S3.Bucket, Key: cfg.S3.Key}, noop, nil

	case config.SourceMongo:
		client, err := database.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return dataset.MongoSource{Collection: database.Centers(client, cfg.Mongo)}, cleanup, nil
	}

	return nil, noop, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
}
