package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Postgres catalog source; the bundled listing is used when empty.
	CatalogDatabaseURL string
	// Optional JSON listing that replaces the bundled one.
	CatalogFile string

	SearchDebounce time.Duration
	ViewportWidth  int

	LogLevel  zapcore.Level
	LogFormat string
}

func Load() Config {
	return Config{
		CatalogDatabaseURL: getenv("CATALOG_DATABASE_URL", ""),
		CatalogFile:        getenv("CATALOG_FILE", ""),

		SearchDebounce: parseDuration(getenv("SEARCH_DEBOUNCE", "500ms"), 500*time.Millisecond),
		ViewportWidth:  parseInt(getenv("VIEWPORT_WIDTH", "1024"), 1024),

		LogLevel:  parseLevel(getenv("LOG_LEVEL", "info"), zapcore.InfoLevel),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "json")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func parseInt(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseLevel(v string, def zapcore.Level) zapcore.Level {
	lvl, err := zapcore.ParseLevel(v)
	if err != nil {
		return def
	}
	return lvl
}
