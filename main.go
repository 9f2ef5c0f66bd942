package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/codexhq/congress-mcp-server/internal/app"
	"github.com/codexhq/congress-mcp-server/internal/congress"
	"github.com/codexhq/congress-mcp-server/internal/logging"
	"github.com/codexhq/congress-mcp-server/internal/version"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ""), "serve MCP over HTTP on this address instead of stdio (e.g., :3333)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		return
	}

	logger, cleanup, err := logging.New("congress-mcp")
	if err != nil {
		// Fall back to stderr; stdout stays reserved for the protocol.
		l := logrus.New()
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetOutput(os.Stderr)
		logger = l.WithField("component", "congress-mcp")
		cleanup = func() {}
	}
	defer cleanup()

	apiKey := os.Getenv("CONGRESS_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: Server is running without CONGRESS_API_KEY set.")
		fmt.Fprintln(os.Stderr, "         API calls will likely fail.")
		logger.Warn("CONGRESS_API_KEY is not set; every tool call will return a configuration error")
	}

	client := congress.New(congress.Config{
		BaseURL: envOr("CONGRESS_API_BASE_URL", ""),
		APIKey:  apiKey,
		Logger:  logger,
	})

	if *httpAddr != "" {
		if err := app.RunHTTP(client, *httpAddr, logger); err != nil {
			logger.WithError(err).Fatal("MCP HTTP server error")
		}
		return
	}

	if err := app.RunStdio(context.Background(), client, os.Stdin, os.Stdout, logger); err != nil {
		logger.WithError(err).Fatal("MCP stdio server error")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
