package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr         string
	Environment  string
	JWTSecret    string
	SnapshotPath string
	FrontendDir  string
	ToastTTL     time.Duration
	MaxBodyBytes int64
	SeedDemoData bool

	// DocRefreshInterval is how often the background job re-derives document
	// statuses. Zero disables the job.
	DocRefreshInterval time.Duration
}

func Load() Config {
	return Config{
		Addr:         getEnv("APP_ADDR", ":8080"),
		Environment:  getEnv("APP_ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		SnapshotPath: getEnv("SNAPSHOT_PATH", "data/hrms-storage.json"),
		FrontendDir:  getEnv("FRONTEND_DIR", "frontend/dist"),
		ToastTTL:     getEnvDuration("TOAST_TTL", 3*time.Second),
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),

		DocRefreshInterval: getEnvDuration("DOC_REFRESH_INTERVAL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.SnapshotPath) == "" {
		return fmt.Errorf("SNAPSHOT_PATH is required")
	}
	if c.Environment == "production" && c.JWTSecret == "dev-secret-change-me" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.ToastTTL <= 0 {
		return fmt.Errorf("TOAST_TTL must be positive")
	}
	if c.DocRefreshInterval < 0 {
		return fmt.Errorf("DOC_REFRESH_INTERVAL must not be negative")
	}
	return nil
}
