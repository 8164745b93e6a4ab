package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Log      LogConfig
	Batch    BatchConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	UseMock         bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// SessionConfig controls admin session cookie behavior.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// LogConfig selects logging level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// BatchConfig carries the production planning knobs. CookEpoch anchors the
// biweekly cook cycle; WasteBuffer is a multiplicative overage (>1.0) applied
// to ingredient purchasing but never to customer pack counts.
type BatchConfig struct {
	PackSizeGrams float64
	WasteBuffer   float64
	CookEpoch     time.Time
}

// Defaults for the batch planning knobs.
const (
	DefaultPackSizeGrams = 340.0
	DefaultWasteBuffer   = 1.1
	DefaultCookEpoch     = "2026-01-08"
)

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		UseMock: parseBool(os.Getenv("USE_MOCK_DB"), false),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDuration(os.Getenv("SESSION_LIFETIME"), 12*time.Hour),
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "barkery_session"),
		CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
		CookieSecure: parseBool(os.Getenv("SESSION_COOKIE_SECURE"), false),
	}

	cfg.Log = LogConfig{
		Level:  firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
		Format: firstNonEmpty(os.Getenv("LOG_FORMAT"), "text"),
	}

	batch, err := loadBatchConfig()
	if err != nil {
		return Config{}, err
	}
	cfg.Batch = batch

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	return cfg, nil
}

func loadBatchConfig() (BatchConfig, error) {
	packSize, err := parseFloat(os.Getenv("PACK_SIZE_G"), DefaultPackSizeGrams)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("parse PACK_SIZE_G: %w", err)
	}
	if packSize <= 0 {
		return BatchConfig{}, fmt.Errorf("pack size must be positive, got %.2f", packSize)
	}

	buffer, err := parseFloat(os.Getenv("WASTE_BUFFER"), DefaultWasteBuffer)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("parse WASTE_BUFFER: %w", err)
	}
	if buffer < 1.0 {
		return BatchConfig{}, fmt.Errorf("waste buffer must be at least 1.0, got %.2f", buffer)
	}

	epochValue := firstNonEmpty(os.Getenv("COOK_EPOCH"), DefaultCookEpoch)
	epoch, err := time.Parse("2006-01-02", epochValue)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("parse COOK_EPOCH: %w", err)
	}

	return BatchConfig{
		PackSizeGrams: packSize,
		WasteBuffer:   buffer,
		CookEpoch:     epoch,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseBool(value string, fallback bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloat(value string, fallback float64) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(trimmed, 64)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(trimmed)
	if err != nil {
		return fallback
	}
	return parsed
}
