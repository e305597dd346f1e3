package config

import (
	"os"
	"strconv"
)

// Default values, overridable through the environment.
const (
	defaultListenAddr  = ":8080"
	defaultProfilePath = "profile.yaml"
	defaultMaxUploadMB = 8
	defaultLogLevel    = "info"

	envListenAddr  = "LISTEN_ADDR"
	envProfilePath = "PROFILE_PATH"
	envMaxUploadMB = "MAX_UPLOAD_MB"
	envLogLevel    = "LOG_LEVEL"
)

// ServerConfig carries the daemon settings
type ServerConfig struct {
	ListenAddr  string
	ProfilePath string
	MaxUploadMB int
	LogLevel    string
}

// LoadServerConfig reads the daemon configuration from environment variables
// or uses default values
func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		ListenAddr:  getenv(envListenAddr, defaultListenAddr),
		ProfilePath: getenv(envProfilePath, defaultProfilePath),
		MaxUploadMB: defaultMaxUploadMB,
		LogLevel:    getenv(envLogLevel, defaultLogLevel),
	}

	if v := os.Getenv(envMaxUploadMB); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.MaxUploadMB = parsed
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
