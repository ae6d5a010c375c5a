package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Inline content limit in bytes.
	MaxInlineSize int64

	// Pagination of normalize results.
	OperationLimit int
	MaxLimit       int

	// Normalize tool defaults.
	VersionMarker string
	StripHTML     bool
	Validate      bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASNORMALIZE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASNORMALIZE_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASNORMALIZE_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASNORMALIZE_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OASNORMALIZE_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASNORMALIZE_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("OASNORMALIZE_MAX_INLINE_SIZE", 10<<20)),
		OperationLimit:     envInt("OASNORMALIZE_OPERATION_LIMIT", 50),
		MaxLimit:           envInt("OASNORMALIZE_MAX_LIMIT", 1000),
		VersionMarker:      envString("OASNORMALIZE_VERSION_MARKER", "api-version"),
		StripHTML:          envBool("OASNORMALIZE_STRIP_HTML", false),
		Validate:           envBool("OASNORMALIZE_VALIDATE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// envString returns the variable when it is set, even to the empty string,
// so a deployment can switch a default off.
func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
