// Package config はアプリケーション全体の設定を一箇所で読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all process-wide settings. It is loaded once in main and
// passed explicitly to constructors; nothing else reads the environment.
type Config struct {
	// Addr is the address the HTTP server listens on (e.g. ":8080").
	Addr string

	// JWTSecret signs and verifies identity tokens.
	JWTSecret string
	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration

	// OMDbAPIKey authenticates requests to the OMDb movie API.
	OMDbAPIKey string
	// OMDbBaseURL is the base URL of the OMDb API (e.g. "https://www.omdbapi.com").
	OMDbBaseURL string
	// OMDbTimeout bounds every request to the movie API.
	OMDbTimeout time.Duration

	// RedisAddr is the address of the Redis cache ("host:port"). Empty disables caching.
	RedisAddr     string
	RedisPassword string
	// SearchCacheTTL is how long movie search results stay cached.
	SearchCacheTTL time.Duration

	// DatabaseDSN is the Postgres connection string.
	DatabaseDSN string
	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool
}

// Load builds a Config from environment variables, applying defaults for
// optional values.
func Load() Config {
	return Config{
		Addr:           getenvDefault("ADDR", ":8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       getenvDuration("TOKEN_TTL_HOURS", 24) * time.Hour,
		OMDbAPIKey:     os.Getenv("OMDB_API_KEY"),
		OMDbBaseURL:    getenvDefault("OMDB_BASE_URL", "https://www.omdbapi.com"),
		OMDbTimeout:    10 * time.Second,
		RedisAddr:      redisAddr(),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		SearchCacheTTL: getenvDuration("SEARCH_CACHE_TTL_MINUTES", 10) * time.Minute,
		DatabaseDSN:    databaseDSN(),
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

func databaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		getenvDefault("DB_HOST", "localhost"),
		getenvDefault("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getenvDefault("DB_SSLMODE", "disable"),
	)
}

func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	return host + ":" + getenvDefault("REDIS_PORT", "6379")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(def)
}
