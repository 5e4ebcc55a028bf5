package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Values come from an optional YAML
// file and can be overridden by environment variables — env wins, so deploys
// never need to template the file.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		URL      string `yaml:"url"`
		MaxConns int    `yaml:"max_conns"`
	} `yaml:"database"`

	Distribution struct {
		// MaxAttempts bounds the engine's filter→select→commit retry loop.
		MaxAttempts int `yaml:"max_attempts"`
	} `yaml:"distribution"`
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and applies env overrides: PORT, DATABASE_URL,
// DATABASE_MAX_CONNS, DISTRIBUTION_MAX_ATTEMPTS.
func Load(path string) (Config, error) {
	var cfg Config
	cfg.Server.Addr = ":8080"

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DATABASE_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing DATABASE_MAX_CONNS: %w", err)
		}
		cfg.Database.MaxConns = n
	}
	if v := os.Getenv("DISTRIBUTION_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing DISTRIBUTION_MAX_ATTEMPTS: %w", err)
		}
		cfg.Distribution.MaxAttempts = n
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("database URL not set (config file or DATABASE_URL)")
	}
	return cfg, nil
}
