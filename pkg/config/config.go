package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Maps    MapsConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DataConfig holds local record-store configuration
type DataConfig struct {
	Dir string
}

// MapsConfig holds external mapping-service endpoints
type MapsConfig struct {
	DirectionsBaseURL string
	SearchBaseURL     string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		Maps: MapsConfig{
			DirectionsBaseURL: getEnv("MAPS_DIRECTIONS_URL", "https://www.google.com/maps/dir/"),
			SearchBaseURL:     getEnv("MAPS_SEARCH_URL", "https://www.google.com/maps/search/?api=1&query="),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "tatli_panel"),
		},
	}, nil
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
