// cmd/mcp/main.go
package main

import (
	"os"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/bridge"
	"sports-health-centers-api/internal/client"
	"sports-health-centers-api/internal/logger"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

// Serves the API tools over stdio. Stdout carries the protocol, so all
// logging goes to stderr.
func main() {
	_ = godotenv.Load()
	cfg, _ := config.LoadConfig("./config")
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = "http://localhost:8000"
	}
	l := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	api := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)
	l.Info("mcp_bridge_start", "api", api.BaseURL)

	if err := server.ServeStdio(bridge.NewServer(api)); err != nil {
		l.Error("mcp_bridge_error", "err", err)
		os.Exit(1)
	}
}
