package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const connectTimeout = 5 * time.Second

type Client struct {
	rdb    *redis.Client
	config *Config
}

// Config describes how to reach Redis. URL wins over the discrete fields.
type Config struct {
	URL      string `json:"url"`
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// Configured reports whether the config names a server at all.
func (c *Config) Configured() bool {
	return c != nil && (c.URL != "" || c.Address != "")
}

// Options converts the config into go-redis options.
func (c *Config) Options() (*redis.Options, error) {
	var opts *redis.Options
	if c.URL != "" {
		parsed, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     c.Address,
			Password: c.Password,
			DB:       c.DB,
		}
	}

	if opts.Addr == "" {
		opts.Addr = "localhost:6379"
	}
	if c.PoolSize > 0 {
		opts.PoolSize = c.PoolSize
	} else if opts.PoolSize == 0 {
		opts.PoolSize = 10
	}
	return opts, nil
}

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(config *Config) (*Client, error) {
	return NewClientContext(context.Background(), config)
}

// NewClientContext is NewClient bounded by ctx as well as the connect timeout.
func NewClientContext(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	opts, err := config.Options()
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		rdb:    rdb,
		config: config,
	}, nil
}

// Redis exposes the underlying go-redis client.
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

// Addr returns the address the client is connected to.
func (c *Client) Addr() string {
	return c.rdb.Options().Addr
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}
