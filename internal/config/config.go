package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config represents runtime configuration for the service. It is loaded once
// at startup and treated as read-only afterwards.
type Config struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	EnableCORS     bool   `json:"enable_cors"`
	LogLevel       string `json:"log_level"`
	LogFile        string `json:"log_file"`
	ClaudeBin      string `json:"claude_bin"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns a configuration with default values.
func Default() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           5051,
		TimeoutSeconds: 120,
		EnableCORS:     false,
		LogLevel:       "info",
		ClaudeBin:      "claude",
	}
}

// Load builds the configuration from an optional JSON file at path plus
// environment variable overrides. An empty path means environment only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		file, err := os.Open(absPath)
		if err != nil {
			return nil, fmt.Errorf("open config %s: %w", absPath, err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if !isValidLogLevel(cfg.LogLevel) {
		cfg.LogLevel = "info"
	}
	if cfg.ClaudeBin == "" {
		cfg.ClaudeBin = "claude"
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid timeout %d", cfg.TimeoutSeconds)
	}

	return &cfg, nil
}

// applyEnvOverrides applies CLAUDE_API_* environment variables on top of the
// file/default values. Unparseable values are ignored.
func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("CLAUDE_API_HOST"); host != "" {
		cfg.Host = host
	}
	if portStr := os.Getenv("CLAUDE_API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}
	if timeoutStr := os.Getenv("CLAUDE_API_TIMEOUT"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			cfg.TimeoutSeconds = timeout
		}
	}
	if corsStr := os.Getenv("CLAUDE_API_CORS"); corsStr != "" {
		cfg.EnableCORS = strings.EqualFold(corsStr, "true")
	}
	if level := os.Getenv("CLAUDE_API_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if logFile := os.Getenv("CLAUDE_API_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}
	if bin := os.Getenv("CLAUDE_API_BIN"); bin != "" {
		cfg.ClaudeBin = bin
	}
}

func isValidLogLevel(level string) bool {
	for _, valid := range validLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Timeout returns the CLI deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
