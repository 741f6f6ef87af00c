package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hctool/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Paths.SaveDir != "" {
		t.Fatalf("save dir must default to autodetection, got %q", cfg.Paths.SaveDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[paths]
save_dir = "/saves/hardcoded"

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Paths.SaveDir != "/saves/hardcoded" {
		t.Fatalf("save dir = %q", cfg.Paths.SaveDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging values must be lowercased: %+v", cfg.Logging)
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	path := writeConfig(t, `
[paths]
outfits_path = "~/outfits.json"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if !strings.HasPrefix(cfg.Paths.OutfitsPath, home) {
		t.Fatalf("outfits path not expanded: %q", cfg.Paths.OutfitsPath)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad format": "[logging]\nformat = \"yaml\"\n",
		"bad level":  "[logging]\nlevel = \"loud\"\n",
		"bad toml":   "[logging\n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, _, err := config.Load(writeConfig(t, contents)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, _, _, err := config.Load(missing); err == nil {
		t.Fatal("expected error for explicitly named missing config")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}
