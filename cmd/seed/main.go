// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/database"
	"sports-health-centers-api/internal/logger"

	"github.com/joho/godotenv"
)

// Seeds MongoDB with a JSON dataset file so the API can run with
// DATASET_SOURCE=mongo.
func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	l := logger.Setup(cfg.Log.Level, cfg.Log.Format)
	// The API's source may be "file" here; only the mongo section matters.
	if err != nil && cfg.Mongo.URI == "" {
		l.Error("config_load_error", "err", err)
		os.Exit(1)
	}

	path := flag.String("file", cfg.Dataset.Path, "JSON dataset file to import")
	flag.Parse()

	if cfg.Mongo.URI == "" {
		l.Error("mongo_uri_missing", "hint", "set MONGO_URI")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		l.Error("mongo_connect_error", "err", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	n, err := database.SeedCentersFromFile(ctx, database.Centers(client, cfg.Mongo), *path, l)
	if err != nil {
		l.Error("seed_error", "seeded", n, "err", err)
		os.Exit(1)
	}
}
