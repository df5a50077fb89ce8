// Package config resolves the desktop shell configuration from defaults, an
// optional YAML file in the data directory and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "proinvestix"
	configFileName = "config.yaml"

	DefaultUpdateURL = "https://api.github.com/repos/proinvestix/desktop/releases/latest"
	DefaultLocale    = "nl"
)

// Environment variables, highest precedence
const (
	EnvDataDir     = "PROINVESTIX_DATA_DIR"
	EnvDSN         = "PROINVESTIX_DSN"
	EnvUpdateURL   = "PROINVESTIX_UPDATE_URL"
	EnvMetricsAddr = "PROINVESTIX_METRICS_ADDR"
	EnvLocale      = "PROINVESTIX_LOCALE"
	EnvPprof       = "PROINVESTIX_PPROF"
)

type Config struct {
	DataDir string `yaml:"-"`
	// DSN overrides the default SQLite settings database
	DSN         string `yaml:"dsn"`
	UpdateURL   string `yaml:"update_url"`
	MetricsAddr string `yaml:"metrics_addr"`
	Locale      string `yaml:"locale"`
	// Pprof exposes profiling on the metrics address
	Pprof bool `yaml:"pprof"`
}

// DBPath is the default SQLite settings database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "settings.db")
}

// DefaultDataDir returns ~/.config/proinvestix
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".config", appDirName)
}

func defaults(dataDir string) *Config {
	return &Config{
		DataDir:   dataDir,
		UpdateURL: DefaultUpdateURL,
		Locale:    DefaultLocale,
	}
}

// Load resolves the configuration and makes sure the data directory exists.
func Load() (*Config, error) {
	return LoadDir("")
}

// LoadDir is Load with an explicit data directory. An empty dataDir falls
// back to PROINVESTIX_DATA_DIR, then DefaultDataDir.
func LoadDir(dataDir string) (*Config, error) {
	if dataDir == "" {
		dataDir = os.Getenv(EnvDataDir)
	}
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	cfg, err := LoadFile(filepath.Join(dataDir, configFileName), dataDir)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads path over the defaults. A missing file is not an error.
func LoadFile(path, dataDir string) (*Config, error) {
	cfg := defaults(dataDir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

// Save writes the file-backed fields to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDSN); v != "" {
		c.DSN = v
	}
	if v := os.Getenv(EnvUpdateURL); v != "" {
		c.UpdateURL = v
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		c.MetricsAddr = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(EnvPprof); v != "" {
		c.Pprof = v == "true" || v == "1"
	}
}
