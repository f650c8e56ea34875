package sqlite

import (
	"fmt"
	"strings"
)

type Config struct {
	DatabasePath string
}

func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	return nil
}

func (c *Config) GetType() string {
	return "sqlite"
}

// GetConnectionString returns the DSN with foreign keys enforced; cascading
// deletes depend on it.
func (c *Config) GetConnectionString() string {
	if strings.Contains(c.DatabasePath, "?") {
		return c.DatabasePath + "&_foreign_keys=on&_busy_timeout=5000"
	}
	return c.DatabasePath + "?_foreign_keys=on&_busy_timeout=5000"
}

func DefaultConfig() *Config {
	return &Config{
		DatabasePath: "./taskflow.db",
	}
}
