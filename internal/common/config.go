package common

import (
	"os"
	"strconv"
)

// Config holds all server configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr        string
	MaxUploadMB int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	JSON  bool
}

// LoadConfig loads configuration from environment variables, falling
// back to defaults suitable for local use.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        getEnv("EXTRACTOR_ADDR", ":8080"),
			MaxUploadMB: getEnvAsInt("EXTRACTOR_MAX_UPLOAD_MB", 32),
		},
		Log: LogConfig{
			Level: getEnv("EXTRACTOR_LOG_LEVEL", "info"),
			JSON:  getEnvAsBool("EXTRACTOR_LOG_JSON", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
