// cmd/agent/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/agent"
	"sports-health-centers-api/internal/client"

	"github.com/joho/godotenv"
)

// Usage: agent "Find tennis centers near Tours"
func main() {
	_ = godotenv.Load()
	// Only the client section is used; a dataset misconfiguration is irrelevant here.
	cfg, _ := config.LoadConfig("./config")
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = "http://localhost:8000"
	}

	question := strings.Join(os.Args[1:], " ")
	if strings.TrimSpace(question) == "" {
		fmt.Print("\nAsk a question about sports centers: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "no question given")
			os.Exit(2)
		}
		question = line
	}

	a := &agent.Agent{
		API: client.New(cfg.Client.BaseURL, cfg.Client.Timeout),
		Out: os.Stdout,
	}
	if err := a.Ask(context.Background(), question); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
