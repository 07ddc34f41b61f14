// Package config provides configuration management for the postbox.
package config

import (
	"os"
	"strconv"
)

// Config holds the complete application configuration.
type Config struct {
	Box    BoxConfig
	Report ReportConfig
	Log    LogConfig
}

// BoxConfig holds mailbox configuration.
type BoxConfig struct {
	Capacity int
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Locale string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Box: BoxConfig{
			Capacity: getEnvPositiveInt("BOX_CAPACITY", 30),
		},
		Report: ReportConfig{
			Locale: getEnv("REPORT_LOCALE", "en"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvPositiveInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
