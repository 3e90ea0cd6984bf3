package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("API_BASE", "")
	c := cli{
		Config:  filepath.Join(dir, "config.yaml"),
		APIBase: "http://poems.internal:9000/",
		Route:   "/poem-generator",
		LogFile: filepath.Join(dir, "poemgen.log"),
	}

	model, closer, err := setup(c)
	if err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if model == nil {
		t.Fatal("setup() returned nil model")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(c.LogFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "http://poems.internal:9000") {
		t.Fatalf("startup record should carry the flag base URL:\n%s", data)
	}
	if _, err := os.Stat(c.Config); err != nil {
		t.Fatalf("default config should be written: %v", err)
	}
}

func TestSetup_UnknownRoute(t *testing.T) {
	c := cli{Config: filepath.Join(t.TempDir(), "config.yaml"), Route: "/nowhere"}
	if _, _, err := setup(c); err == nil {
		t.Fatal("expected error for unknown route")
	}
}
