package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := writeConfig(t, "port: \"9090\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.DevicesFile != "configs/devices.yml" {
		t.Fatalf("devices = %q", cfg.DevicesFile)
	}
	if cfg.ResponseMode != "natural" || cfg.HistoryLimit != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Strategy != StrategyPattern {
		t.Fatalf("strategy = %q", cfg.Strategy)
	}
	if cfg.LLMTimeout != 10*time.Second {
		t.Fatalf("llm timeout = %v", cfg.LLMTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadFull(t *testing.T) {
	dir := writeConfig(t, `
port: "8088"
devices: "custom/devices.yml"
response:
  mode: "structured"
history:
  limit: 25
interpreter:
  strategy: "llm"
  llm:
    endpoint: "http://10.0.0.5:8081"
    timeout: "30s"
log:
  level: "debug"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Strategy != StrategyLLM || cfg.LLMEndpoint != "http://10.0.0.5:8081" || cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("unexpected llm settings: %+v", cfg)
	}
	if cfg.HistoryLimit != 25 || cfg.ResponseMode != "structured" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected settings: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown strategy", "interpreter:\n  strategy: \"oracle\"\n"},
		{"zero history limit", "history:\n  limit: 0\n"},
		{"negative history limit", "history:\n  limit: -5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
