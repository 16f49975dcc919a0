package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and builds the configuration from the
// environment, falling back to defaults for unset or malformed values.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}

	return Config{
		Port:              GetEnv("PORT", "8080"),
		RedisAddr:         GetEnv("REDIS_ADDR", ""),
		RedisPassword:     GetEnv("REDIS_PASSWORD", ""),
		RedisDB:           GetIntEnv("REDIS_DB", 0),
		CacheTTL:          GetDurationEnv("CACHE_TTL", 10*time.Minute),
		RateLimitCapacity: GetIntEnv("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:   GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
		LogFormat:         GetEnv("LOG_FORMAT", "text"),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses values such as "30s" or "10m".
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
