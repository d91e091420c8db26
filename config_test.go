package bramble

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestParseConfigTOML(t *testing.T) {
	data := []byte(`
[window]
title = "orbit"
width = 800
height = 600

[engine]
debug = true
max_drain_passes = 16

[logging]
level = "debug"
format = "json"
`)
	cfg, err := ParseConfig(data, "toml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "orbit" || cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.TPS != 60 {
		t.Errorf("TPS = %d, want default 60", cfg.Window.TPS)
	}
	if !cfg.Engine.Debug || cfg.Engine.MaxDrainPasses != 16 {
		t.Errorf("engine = %+v", cfg.Engine)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
window:
  tps: 30
  resizable: true
profile:
  mode: cpu
  path: /tmp/prof
`)
	cfg, err := ParseConfig(data, "yml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.TPS != 30 || !cfg.Window.Resizable {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Width = %d, want default 1280", cfg.Window.Width)
	}
	if cfg.Profile.Mode != "cpu" || cfg.Profile.Path != "/tmp/prof" {
		t.Errorf("profile = %+v", cfg.Profile)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
		want   string
	}{
		{"unknown format", "", "ini", "unsupported config format"},
		{"bad toml", "[window\n", "toml", "parse toml"},
		{"bad yaml", "window: [", "yaml", "parse yaml"},
		{"negative size", "[window]\nwidth = -1\n", "toml", "window size"},
		{"bad format", "logging:\n  format: xml\n", "yaml", "logging format"},
		{"bad profile", "[profile]\nmode = \"gpu\"\n", "toml", "profile mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.format)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.TPS = 0
	cfg.Engine.MaxDrainPasses = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "tps") || !strings.Contains(msg, "max_drain_passes") {
		t.Errorf("err = %q, want both problems", msg)
	}
}

func TestLoadConfigByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "from-file" {
		t.Errorf("Title = %q", cfg.Window.Title)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapping os.ErrNotExist", err)
	}
}

func TestNewLogger(t *testing.T) {
	for _, cfg := range []LoggingConfig{
		{Level: "debug", Format: "console"},
		{Level: "warn", Format: "json"},
		{Level: "bogus", Format: "console"},
	} {
		log, err := NewLogger(cfg)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", cfg, err)
		}
		if log == nil {
			t.Fatalf("NewLogger(%+v) returned nil", cfg)
		}
	}

	log, _ := NewLogger(LoggingConfig{Level: "warn", Format: "json"})
	if log.Core().Enabled(-1) {
		t.Error("debug enabled at warn level")
	}
}
