package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codexhq/congress-mcp-server/internal/protocol"
	"github.com/codexhq/congress-mcp-server/internal/tools"
	"github.com/codexhq/congress-mcp-server/internal/version"
)

// Manifest is the documentation artifact listing every published tool.
type Manifest struct {
	Name        string                    `json:"name"`
	Version     string                    `json:"version"`
	GeneratedAt string                    `json:"generatedAt"`
	ToolCount   int                       `json:"toolCount"`
	Tools       []protocol.ToolDescriptor `json:"tools"`
}

func main() {
	outDir := flag.String("out", "dist", "output directory")
	flag.Parse()

	raw, err := Generate(*outDir, time.Now().UTC())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("manifest written to %s\n", filepath.Join(*outDir, "tools.json"))
	fmt.Printf("tools listed: %d (%d bytes)\n", len(tools.Defs()), len(raw))
}

// Generate writes tools.json under outDir and returns the raw bytes.
func Generate(outDir string, now time.Time) ([]byte, error) {
	m := Manifest{
		Name:        "congress-mcp-server",
		Version:     version.Get().Version,
		GeneratedAt: now.Format(time.RFC3339),
		Tools:       tools.Descriptors(),
	}
	m.ToolCount = len(m.Tools)

	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "tools.json"), raw, 0o644); err != nil {
		return nil, err
	}
	return raw, nil
}
