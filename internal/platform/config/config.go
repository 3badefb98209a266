// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPort            = "8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultDocsPath        = "/api-docs"
)

// Config holds the process settings.
type Config struct {
	Host            string
	Port            string
	DocsPath        string
	ShutdownTimeout time.Duration
	LogLevel        zapcore.Level
}

// Addr is the listen address for http.Server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads .env files (missing files are ignored) and then the environment.
// Variables already set in the environment take precedence over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Host:            strings.TrimSpace(os.Getenv("HOST")),
		Port:            defaultPort,
		DocsPath:        defaultDocsPath,
		ShutdownTimeout: defaultShutdownTimeout,
		LogLevel:        zapcore.InfoLevel,
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q: must be an integer in 1..65535", v)
		}
		cfg.Port = strconv.Itoa(n)
	}

	if v := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", v)
		}
		cfg.ShutdownTimeout = d
	}

	if v := strings.TrimSpace(os.Getenv("DOCS_PATH")); v != "" {
		if !strings.HasPrefix(v, "/") || v == "/" {
			return Config{}, fmt.Errorf("invalid DOCS_PATH %q: must start with / and not be the root", v)
		}
		cfg.DocsPath = strings.TrimRight(v, "/")
	}

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
