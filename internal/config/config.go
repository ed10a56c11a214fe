package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	Language        string // explicit override; empty means resolve from locale env
	APIKey          string
	GenProvider     string
	GenModel        string // empty selects the provider default
	GenBaseURL      string
	RabbitURI       string // empty disables change events
	RabbitExchange  string
	EventBuffer     int
	ShutdownTimeout time.Duration
}

const (
	EnvPath            = "ENV_PATH"
	HTTPAddr           = "HTTP_ADDR"
	Language           = "NEWSFLOW_LANG"
	APIKey             = "API_KEY"
	GenProvider        = "GEN_PROVIDER"
	GenModel           = "GEN_MODEL"
	GenBaseURL         = "GEN_BASE_URL"
	RabbitURIEnv       = "RABBIT_URI"
	RabbitExchangeEnv  = "RABBIT_EXCHANGE"
	EventBuffer        = "EVENT_BUFFER"
	ShutdownTimeout    = "SHUTDOWN_TIMEOUT"
	defaultGenProvider = "gemini"
)

var providers = map[string]bool{"gemini": true, "openai": true}

// LoadDotEnv loads ENV_PATH (default .env) into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadDotEnv() error {
	path := getEnv(EnvPath, ".env")
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func FromEnv() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv(HTTPAddr, ":8080")
	cfg.Language = getEnv(Language, "")
	cfg.APIKey = getEnv(APIKey, "")
	cfg.GenProvider = getEnv(GenProvider, defaultGenProvider)
	cfg.GenModel = getEnv(GenModel, "")
	cfg.GenBaseURL = getEnv(GenBaseURL, "")
	cfg.RabbitURI = getEnv(RabbitURIEnv, "")
	cfg.RabbitExchange = getEnv(RabbitExchangeEnv, "newsflow.articles")

	if !providers[cfg.GenProvider] {
		return cfg, fmt.Errorf("invalid %v: unknown provider %q", GenProvider, cfg.GenProvider)
	}

	var err error
	if cfg.EventBuffer, err = getEnvInt(EventBuffer, 64); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", EventBuffer, err)
	}
	if cfg.EventBuffer <= 0 {
		return cfg, fmt.Errorf("invalid %v: must be positive, got %d", EventBuffer, cfg.EventBuffer)
	}
	shutdownStr := getEnv(ShutdownTimeout, "5s")
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", ShutdownTimeout, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return i, nil
}
