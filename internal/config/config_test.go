package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv(EnvDataDir, dir)
	t.Setenv(EnvDSN, "")
	t.Setenv(EnvUpdateURL, "")
	t.Setenv(EnvMetricsAddr, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvPprof, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pprof {
		t.Error("Pprof enabled by default")
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
	if cfg.UpdateURL != DefaultUpdateURL || cfg.Locale != DefaultLocale {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.DSN != "" || cfg.MetricsAddr != "" {
		t.Errorf("unexpected optional values: %+v", cfg)
	}
	if got, want := cfg.DBPath(), filepath.Join(dir, "settings.db"); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := &Config{
		DSN:         "sqlite:///from/file.db",
		UpdateURL:   "https://file.example/latest",
		MetricsAddr: "127.0.0.1:9100",
		Locale:      "en",
	}
	if err := file.Save(filepath.Join(dir, configFileName)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv(EnvDataDir, dir)
	t.Setenv(EnvDSN, "")
	t.Setenv(EnvUpdateURL, "https://env.example/latest")
	t.Setenv(EnvMetricsAddr, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvPprof, "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Pprof {
		t.Error("Pprof = false, want env value")
	}
	if cfg.DSN != file.DSN {
		t.Errorf("DSN = %q, want file value %q", cfg.DSN, file.DSN)
	}
	if cfg.UpdateURL != "https://env.example/latest" {
		t.Errorf("UpdateURL = %q, want env value", cfg.UpdateURL)
	}
	if cfg.MetricsAddr != "127.0.0.1:9100" || cfg.Locale != "en" {
		t.Errorf("file values lost: %+v", cfg)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte("dsn: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, dir); err == nil {
		t.Error("LoadFile() error = nil, want parse error")
	}
}

func TestLoadDirOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := filepath.Join(t.TempDir(), "flag")
	t.Setenv(EnvDataDir, envDir)

	cfg, err := LoadDir(flagDir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if cfg.DataDir != flagDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, flagDir)
	}
}
