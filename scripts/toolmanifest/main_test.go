package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGenerateWritesManifest(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	raw, err := Generate(dir, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "tools.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if string(onDisk) != string(raw) {
		t.Fatal("returned bytes differ from file contents")
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Name != "congress-mcp-server" {
		t.Fatalf("unexpected name: %s", m.Name)
	}
	if m.ToolCount != 77 || len(m.Tools) != 77 {
		t.Fatalf("unexpected tool count: %d/%d", m.ToolCount, len(m.Tools))
	}
	if m.GeneratedAt != "2026-08-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", m.GeneratedAt)
	}
}
