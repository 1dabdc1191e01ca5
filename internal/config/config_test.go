package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("expected 09:00 day start, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayEnd != "21:00" {
		t.Errorf("expected 21:00 day end, got %s", cfg.Schedule.DayEnd)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("expected defaults, got %s", cfg.Schedule.DayStart)
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[schedule]
day_start = "08:00"
day_end = "18:00"

[server]
base_url = "http://calendar.internal:9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule.DayStart != "08:00" {
		t.Errorf("expected 08:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Server.BaseURL != "http://calendar.internal:9000" {
		t.Errorf("expected overridden base url, got %s", cfg.Server.BaseURL)
	}
	// Untouched sections keep defaults.
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("HORARIO_DAY_START", "07:30")
	t.Setenv("HORARIO_BASE_URL", "http://other:1234")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule.DayStart != "07:30" {
		t.Errorf("expected env override 07:30, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Server.BaseURL != "http://other:1234" {
		t.Errorf("expected env override base url, got %s", cfg.Server.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad day_start", func(c *Config) { c.Schedule.DayStart = "9am" }},
		{"bad day_end", func(c *Config) { c.Schedule.DayEnd = "21-00" }},
		{"inverted window", func(c *Config) { c.Schedule.DayStart, c.Schedule.DayEnd = "21:00", "09:00" }},
		{"empty base_url", func(c *Config) { c.Server.BaseURL = "" }},
		{"empty db_path", func(c *Config) { c.Storage.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Schedule.DayStart = "10:00"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Schedule.DayStart != "10:00" {
		t.Errorf("expected saved value, got %s", loaded.Schedule.DayStart)
	}
}
