// Package config provides configuration management for the TaskFlow core service.
// It loads configuration from environment variables with sensible defaults and
// validates it so the application starts safely.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - USER_ID_HEADER: Header carrying the caller id set by the gateway (default: X-User-Id)
//   - CORS_ALLOWED_ORIGINS: Comma separated origins (default: *)
//   - TLS_CERT_FILE / TLS_KEY_FILE: Serve HTTPS when both are set
//
// Database Configuration:
//   - DATABASE_TYPE: "sqlite" or "postgres" (default: sqlite)
//   - DATABASE_PATH: SQLite database file path (default: ./taskflow.db)
//   - POSTGRES_HOST, POSTGRES_PORT, POSTGRES_DB, POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_SSL_MODE
//
// Redis Configuration (optional; without it the in-process cache is used):
//   - REDIS_URL: Redis connection string, e.g. redis://:secret@localhost:6379/0
//   - REDIS_ADDRESS: Redis server address (host:port), used when REDIS_URL is empty
//   - REDIS_PASSWORD, REDIS_DB (0-15, default 0), REDIS_POOL_SIZE (default 10)
//
// Cache Configuration:
//   - CACHE_TTL: Expiry of cached reads (default: 5m)
//   - CACHE_KEY_PREFIX: Prefix for Redis keys (default: none)
//   - CACHED_ENTITIES: Entities served cache-aside (default: workspace,board)
//   - CACHE_FAILURE_POLICY: "fallback" or "propagate" (default: fallback)
//   - CACHE_BREAKER_ENABLED: Guard Redis calls with a circuit breaker (default: true)
//
// Example usage:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Entity names accepted by CACHED_ENTITIES
const (
	EntityWorkspace = "workspace"
	EntityBoard     = "board"
	EntityList      = "list"
	EntityCard      = "card"
)

// Cache failure policies
const (
	CacheFailureFallback  = "fallback"
	CacheFailurePropagate = "propagate"
)

// Config holds all configuration values for the TaskFlow core service.
// Numeric and duration settings are kept as strings, the way they arrive from
// the environment, and are checked by Validate.
type Config struct {
	// Application settings
	Port               string
	LogLevel           string
	UserIDHeader       string
	CORSAllowedOrigins string
	TLSCertFile        string
	TLSKeyFile         string

	// Database configuration
	DatabaseType     string // "sqlite" or "postgres"
	DatabasePath     string
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	PostgresSSLMode  string

	// Redis configuration
	RedisURL      string
	RedisAddress  string
	RedisPassword string
	RedisDB       string
	RedisPoolSize string

	// Cache configuration
	CacheTTL            string
	CacheKeyPrefix      string
	CachedEntities      string
	CacheFailurePolicy  string
	CacheBreakerEnabled bool
}

// Load creates a new Config instance with values loaded from environment variables.
// If an environment variable is not set, the corresponding default value is used.
//
// This function does not validate the configuration; call Validate() on the
// returned Config.
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		UserIDHeader:       getEnv("USER_ID_HEADER", "X-User-Id"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		TLSCertFile:        getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:         getEnv("TLS_KEY_FILE", ""),

		DatabaseType:     getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:     getEnv("DATABASE_PATH", "./taskflow.db"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "taskflow"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresSSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisAddress:  getEnv("REDIS_ADDRESS", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisPoolSize: getEnv("REDIS_POOL_SIZE", "10"),

		CacheTTL:            getEnv("CACHE_TTL", "5m"),
		CacheKeyPrefix:      getEnv("CACHE_KEY_PREFIX", ""),
		CachedEntities:      getEnv("CACHED_ENTITIES", "workspace,board"),
		CacheFailurePolicy:  getEnv("CACHE_FAILURE_POLICY", CacheFailureFallback),
		CacheBreakerEnabled: getBoolEnv("CACHE_BREAKER_ENABLED", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv accepts the strconv.ParseBool spellings; anything else yields defaultValue.
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Validate checks required fields, formats and cross-field dependencies.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	if c.UserIDHeader == "" {
		return fmt.Errorf("USER_ID_HEADER must not be empty")
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}

	switch c.DatabaseType {
	case "sqlite":
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required when using SQLite")
		}
	case "postgres", "postgresql":
		if c.PostgresHost == "" {
			return fmt.Errorf("POSTGRES_HOST is required when using PostgreSQL")
		}
		if c.PostgresDB == "" {
			return fmt.Errorf("POSTGRES_DB is required when using PostgreSQL")
		}
		if c.PostgresUser == "" {
			return fmt.Errorf("POSTGRES_USER is required when using PostgreSQL")
		}
		if port, err := strconv.Atoi(c.PostgresPort); err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("POSTGRES_PORT must be a valid port number")
		}
	default:
		return fmt.Errorf("DATABASE_TYPE must be 'sqlite' or 'postgres'")
	}

	if c.RedisConfigured() {
		if db, err := strconv.Atoi(c.RedisDB); err != nil || db < 0 || db > 15 {
			return fmt.Errorf("REDIS_DB must be a number between 0 and 15")
		}
		if poolSize, err := strconv.Atoi(c.RedisPoolSize); err != nil || poolSize < 1 {
			return fmt.Errorf("REDIS_POOL_SIZE must be a positive number")
		}
	}

	if ttl, err := time.ParseDuration(c.CacheTTL); err != nil || ttl <= 0 {
		return fmt.Errorf("CACHE_TTL must be a positive duration (e.g., '5m')")
	}

	switch c.CacheFailurePolicy {
	case CacheFailureFallback, CacheFailurePropagate:
	default:
		return fmt.Errorf("CACHE_FAILURE_POLICY must be '%s' or '%s'", CacheFailureFallback, CacheFailurePropagate)
	}

	for _, entity := range c.CachedEntityList() {
		switch entity {
		case EntityWorkspace, EntityBoard, EntityList, EntityCard:
		default:
			return fmt.Errorf("CACHED_ENTITIES contains unknown entity %q", entity)
		}
	}

	return nil
}

// RedisConfigured reports whether any Redis connection setting is present.
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisAddress != ""
}

// CacheTTLDuration returns the parsed CACHE_TTL, falling back to five minutes.
func (c *Config) CacheTTLDuration() time.Duration {
	ttl, err := time.ParseDuration(c.CacheTTL)
	if err != nil || ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}

// CachedEntityList returns the normalized, de-duplicated CACHED_ENTITIES.
func (c *Config) CachedEntityList() []string {
	seen := make(map[string]bool)
	var entities []string
	for _, part := range strings.Split(c.CachedEntities, ",") {
		entity := strings.ToLower(strings.TrimSpace(part))
		if entity == "" || seen[entity] {
			continue
		}
		seen[entity] = true
		entities = append(entities, entity)
	}
	return entities
}

// IsCached reports whether reads of the given entity go through the cache.
func (c *Config) IsCached(entity string) bool {
	for _, e := range c.CachedEntityList() {
		if e == entity {
			return true
		}
	}
	return false
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, part := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
