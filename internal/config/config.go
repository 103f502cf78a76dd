// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/tuem/resembla/client"
	"github.com/tuem/resembla/internal/logging"
)

// Config holds all configuration for the command-line clients.
type Config struct {
	ServerAddress  string        // RESEMBLA_SERVER_ADDRESS, default "localhost:50051"
	Insecure       bool          // RESEMBLA_INSECURE, default true
	Timeout        time.Duration // RESEMBLA_TIMEOUT_MS, default 0 (no deadline)
	NormalizeQuery bool          // RESEMBLA_NORMALIZE_QUERY, default false

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ServerAddress:  getEnvString("RESEMBLA_SERVER_ADDRESS", client.DefaultAddress),
		Insecure:       getEnvBool("RESEMBLA_INSECURE", true),
		Timeout:        getEnvDurationMs("RESEMBLA_TIMEOUT_MS", 0),
		NormalizeQuery: getEnvBool("RESEMBLA_NORMALIZE_QUERY", false),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// Negative values are treated as "no deadline".
func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	if ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Client returns the channel settings for client.New.
func (c *Config) Client() client.Config {
	return client.Config{
		Address:        c.ServerAddress,
		Insecure:       c.Insecure,
		Timeout:        c.Timeout,
		NormalizeQuery: c.NormalizeQuery,
	}
}

// Logging returns the settings for logging.New.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		FilePath:   c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
		Compress:   c.LogCompress,
	}
}
