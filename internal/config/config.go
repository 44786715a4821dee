package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port         string   `yaml:"port"`
		CORSOrigins  []string `yaml:"cors_origins"`
		SecureCookie bool     `yaml:"secure_cookie"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Session struct {
		TTL string `yaml:"ttl"`
	} `yaml:"session"`
	Questions struct {
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"questions"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads YAML config from path, then applies environment overrides.
// A missing file is not an error; defaults and env fill the gaps.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, cfg.Validate()
}

// LoadDotenv loads .env files if present. Existing variables win.
func LoadDotenv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Environment = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
	// session cookies ride on CORS requests, so every origin must be named
	for _, origin := range c.Server.CORSOrigins {
		if strings.Contains(origin, "*") {
			return fmt.Errorf("wildcard cors origin %q not allowed with credentials", origin)
		}
	}
	for _, raw := range []string{c.Session.TTL, c.Questions.CacheTTL} {
		if raw == "" {
			continue
		}
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			return fmt.Errorf("invalid duration %q", raw)
		}
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
