package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clear environment variables to test defaults
	clearTestEnvVars()

	config := Load()

	if config.Port != "8080" {
		t.Errorf("Load() Port = %v, want %v", config.Port, "8080")
	}

	if config.LogLevel != "info" {
		t.Errorf("Load() LogLevel = %v, want %v", config.LogLevel, "info")
	}

	if config.UserIDHeader != "X-User-Id" {
		t.Errorf("Load() UserIDHeader = %v, want %v", config.UserIDHeader, "X-User-Id")
	}

	if config.DatabaseType != "sqlite" {
		t.Errorf("Load() DatabaseType = %v, want %v", config.DatabaseType, "sqlite")
	}

	if config.DatabasePath != "./taskflow.db" {
		t.Errorf("Load() DatabasePath = %v, want %v", config.DatabasePath, "./taskflow.db")
	}

	if config.PostgresDB != "taskflow" {
		t.Errorf("Load() PostgresDB = %v, want %v", config.PostgresDB, "taskflow")
	}

	// Redis is optional and unset by default
	if config.RedisURL != "" || config.RedisAddress != "" {
		t.Errorf("Load() Redis = %q/%q, want empty", config.RedisURL, config.RedisAddress)
	}

	if config.RedisConfigured() {
		t.Errorf("Load() RedisConfigured() = true, want false")
	}

	if config.RedisDB != "0" {
		t.Errorf("Load() RedisDB = %v, want %v", config.RedisDB, "0")
	}

	if config.RedisPoolSize != "10" {
		t.Errorf("Load() RedisPoolSize = %v, want %v", config.RedisPoolSize, "10")
	}

	if config.CacheTTL != "5m" {
		t.Errorf("Load() CacheTTL = %v, want %v", config.CacheTTL, "5m")
	}

	if config.CacheKeyPrefix != "" {
		t.Errorf("Load() CacheKeyPrefix = %v, want empty", config.CacheKeyPrefix)
	}

	if config.CachedEntities != "workspace,board" {
		t.Errorf("Load() CachedEntities = %v, want %v", config.CachedEntities, "workspace,board")
	}

	if config.CacheFailurePolicy != CacheFailureFallback {
		t.Errorf("Load() CacheFailurePolicy = %v, want %v", config.CacheFailurePolicy, CacheFailureFallback)
	}

	if !config.CacheBreakerEnabled {
		t.Errorf("Load() CacheBreakerEnabled = %v, want %v", config.CacheBreakerEnabled, true)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Load() defaults should validate, got %v", err)
	}
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("PORT", "9090")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("POSTGRES_HOST", "db.internal")
	os.Setenv("REDIS_URL", "redis://localhost:6379/2")
	os.Setenv("CACHE_TTL", "30s")
	os.Setenv("CACHE_KEY_PREFIX", "tf:")
	os.Setenv("CACHED_ENTITIES", "workspace, board ,card")
	os.Setenv("CACHE_FAILURE_POLICY", "propagate")
	os.Setenv("CACHE_BREAKER_ENABLED", "false")

	config := Load()

	if config.Port != "9090" {
		t.Errorf("Load() Port = %v, want %v", config.Port, "9090")
	}

	if config.DatabaseType != "postgres" {
		t.Errorf("Load() DatabaseType = %v, want %v", config.DatabaseType, "postgres")
	}

	if config.PostgresHost != "db.internal" {
		t.Errorf("Load() PostgresHost = %v, want %v", config.PostgresHost, "db.internal")
	}

	if !config.RedisConfigured() {
		t.Errorf("Load() RedisConfigured() = false, want true")
	}

	if config.CacheTTLDuration() != 30*time.Second {
		t.Errorf("CacheTTLDuration() = %v, want %v", config.CacheTTLDuration(), 30*time.Second)
	}

	if config.CacheKeyPrefix != "tf:" {
		t.Errorf("Load() CacheKeyPrefix = %v, want %v", config.CacheKeyPrefix, "tf:")
	}

	if config.CacheFailurePolicy != CacheFailurePropagate {
		t.Errorf("Load() CacheFailurePolicy = %v, want %v", config.CacheFailurePolicy, CacheFailurePropagate)
	}

	if config.CacheBreakerEnabled {
		t.Errorf("Load() CacheBreakerEnabled = %v, want %v", config.CacheBreakerEnabled, false)
	}

	got := strings.Join(config.CachedEntityList(), ",")
	if got != "workspace,board,card" {
		t.Errorf("CachedEntityList() = %v, want %v", got, "workspace,board,card")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		envValue     string
		defaultValue string
		expected     string
	}{
		{
			name:         "existing environment variable",
			key:          "TEST_KEY_EXISTS",
			envValue:     "test_value",
			defaultValue: "default",
			expected:     "test_value",
		},
		{
			name:         "empty environment variable",
			key:          "TEST_KEY_EMPTY",
			envValue:     "",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.key, tt.envValue)
			defer os.Unsetenv(tt.key)

			if result := getEnv(tt.key, tt.defaultValue); result != tt.expected {
				t.Errorf("getEnv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{"true value", "TEST_BOOL_TRUE", "true", false, true},
		{"false value", "TEST_BOOL_FALSE", "false", true, false},
		{"1 value", "TEST_BOOL_ONE", "1", false, true},
		{"0 value", "TEST_BOOL_ZERO", "0", true, false},
		{"invalid value uses default", "TEST_BOOL_INVALID", "maybe", true, true},
		{"empty value uses default", "TEST_BOOL_EMPTY", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.key, tt.envValue)
			defer os.Unsetenv(tt.key)

			if result := getBoolEnv(tt.key, tt.defaultValue); result != tt.expected {
				t.Errorf("getBoolEnv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:               "8080",
			UserIDHeader:       "X-User-Id",
			DatabaseType:       "sqlite",
			DatabasePath:       "./taskflow.db",
			RedisDB:            "0",
			RedisPoolSize:      "10",
			CacheTTL:           "5m",
			CachedEntities:     "workspace,board",
			CacheFailurePolicy: CacheFailureFallback,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid sqlite config", mutate: func(c *Config) {}},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Port = "invalid" },
			wantErr: "PORT must be a valid port number",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: "PORT must be a valid port number",
		},
		{
			name:    "empty user header",
			mutate:  func(c *Config) { c.UserIDHeader = "" },
			wantErr: "USER_ID_HEADER must not be empty",
		},
		{
			name:    "tls cert without key",
			mutate:  func(c *Config) { c.TLSCertFile = "cert.pem" },
			wantErr: "TLS_CERT_FILE and TLS_KEY_FILE must be set together",
		},
		{
			name:    "missing sqlite path",
			mutate:  func(c *Config) { c.DatabasePath = "" },
			wantErr: "DATABASE_PATH is required",
		},
		{
			name: "valid postgres config",
			mutate: func(c *Config) {
				c.DatabaseType = "postgres"
				c.PostgresHost = "localhost"
				c.PostgresPort = "5432"
				c.PostgresDB = "taskflow"
				c.PostgresUser = "postgres"
			},
		},
		{
			name: "postgres without host",
			mutate: func(c *Config) {
				c.DatabaseType = "postgres"
				c.PostgresDB = "taskflow"
				c.PostgresUser = "postgres"
				c.PostgresPort = "5432"
			},
			wantErr: "POSTGRES_HOST is required",
		},
		{
			name:    "unknown database type",
			mutate:  func(c *Config) { c.DatabaseType = "mysql" },
			wantErr: "DATABASE_TYPE must be",
		},
		{
			name: "redis db out of range",
			mutate: func(c *Config) {
				c.RedisAddress = "localhost:6379"
				c.RedisDB = "16"
			},
			wantErr: "REDIS_DB must be a number between 0 and 15",
		},
		{
			name: "redis pool size ignored without redis",
			mutate: func(c *Config) {
				c.RedisPoolSize = "0"
			},
		},
		{
			name: "redis pool size invalid",
			mutate: func(c *Config) {
				c.RedisURL = "redis://localhost:6379"
				c.RedisPoolSize = "0"
			},
			wantErr: "REDIS_POOL_SIZE must be a positive number",
		},
		{
			name:    "invalid cache ttl",
			mutate:  func(c *Config) { c.CacheTTL = "soon" },
			wantErr: "CACHE_TTL must be a positive duration",
		},
		{
			name:    "zero cache ttl",
			mutate:  func(c *Config) { c.CacheTTL = "0s" },
			wantErr: "CACHE_TTL must be a positive duration",
		},
		{
			name:    "unknown failure policy",
			mutate:  func(c *Config) { c.CacheFailurePolicy = "ignore" },
			wantErr: "CACHE_FAILURE_POLICY must be",
		},
		{
			name:    "unknown cached entity",
			mutate:  func(c *Config) { c.CachedEntities = "workspace,comment" },
			wantErr: `unknown entity "comment"`,
		},
		{
			name:   "empty cached entities",
			mutate: func(c *Config) { c.CachedEntities = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsCached(t *testing.T) {
	config := &Config{CachedEntities: "Workspace, BOARD,board"}

	if !config.IsCached(EntityWorkspace) {
		t.Errorf("IsCached(workspace) = false, want true")
	}
	if !config.IsCached(EntityBoard) {
		t.Errorf("IsCached(board) = false, want true")
	}
	if config.IsCached(EntityCard) {
		t.Errorf("IsCached(card) = true, want false")
	}
	if n := len(config.CachedEntityList()); n != 2 {
		t.Errorf("CachedEntityList() length = %d, want 2", n)
	}
}

func TestConfig_CacheTTLDurationFallback(t *testing.T) {
	config := &Config{CacheTTL: "garbage"}
	if got := config.CacheTTLDuration(); got != 5*time.Minute {
		t.Errorf("CacheTTLDuration() = %v, want %v", got, 5*time.Minute)
	}
}

func TestConfig_AllowedOrigins(t *testing.T) {
	config := &Config{CORSAllowedOrigins: "https://a.example, https://b.example,,"}
	origins := config.AllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://a.example" || origins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins() = %v", origins)
	}
}

func clearTestEnvVars() {
	testKeys := []string{
		"PORT", "LOG_LEVEL", "USER_ID_HEADER", "CORS_ALLOWED_ORIGINS",
		"TLS_CERT_FILE", "TLS_KEY_FILE",
		"DATABASE_TYPE", "DATABASE_PATH", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_SSL_MODE",
		"REDIS_URL", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "REDIS_POOL_SIZE",
		"CACHE_TTL", "CACHE_KEY_PREFIX", "CACHED_ENTITIES", "CACHE_FAILURE_POLICY",
		"CACHE_BREAKER_ENABLED",
	}

	for _, key := range testKeys {
		os.Unsetenv(key)
	}
}
