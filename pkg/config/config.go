package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL       string
	SocketBaseURL string
	AccessToken   string
	UserID        string
	Environment   string
	HTTPTimeout   int64 // seconds
}

var apiSuffix = regexp.MustCompile(`(?i)/api(?:/v\d+)?/?$`)

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BaseURL:     getEnv("BASE_URL", "http://localhost:3001"),
		AccessToken: getEnv("ACCESS_TOKEN", ""),
		UserID:      getEnv("USER_ID", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
		HTTPTimeout: getEnvAsInt64("HTTP_TIMEOUT_SECONDS", 30),
	}
	cfg.SocketBaseURL = deriveSocketURL(cfg.BaseURL)

	return cfg, nil
}

// deriveSocketURL resolves the realtime endpoint: an explicit SOCKET_BASE_URL
// wins, otherwise the REST base URL with any /api[/vN] suffix stripped.
func deriveSocketURL(base string) string {
	if v := strings.TrimSpace(getEnv("SOCKET_BASE_URL", getEnv("SOCKET_URL", ""))); v != "" {
		return sanitizeURL(v)
	}
	if b := strings.TrimSpace(base); b != "" {
		return sanitizeURL(apiSuffix.ReplaceAllString(b, ""))
	}
	return "http://localhost:5001"
}

func sanitizeURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
