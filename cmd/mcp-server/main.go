package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/codexhq/congress-mcp-server/internal/app"
	"github.com/codexhq/congress-mcp-server/internal/congress"
)

// HTTP-only variant of the server, for hosts that speak MCP over POST
// instead of stdio.
func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", ":3333", "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger := l.WithField("component", "mcp-server")

	apiKey := os.Getenv("CONGRESS_API_KEY")
	if apiKey == "" {
		logger.Warn("CONGRESS_API_KEY is not set; every tool call will return a configuration error")
	}

	client := congress.New(congress.Config{
		BaseURL: os.Getenv("CONGRESS_API_BASE_URL"),
		APIKey:  apiKey,
		Logger:  logger,
	})

	if err := app.RunHTTP(client, *httpAddr, logger); err != nil {
		logger.WithError(err).Fatal("MCP server error")
	}
}
