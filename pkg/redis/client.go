package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wonny/scout/backend/pkg/config"
)

// The API rate limiter sits on the request path, so Redis calls fail fast
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 200 * time.Millisecond
)

// Client is the optional Redis backend of the API rate limiter.
// A disabled client is valid and answers every call as a no-op.
// ⭐ SSOT: Redis connections are managed here only
type Client struct {
	rdb  *redis.Client
	addr string
}

// New connects when REDIS_ENABLED is set; otherwise it returns a disabled client
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.Redis.Enabled {
		return &Client{}, nil
	}

	addr := net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s: connection failed: %w", addr, err)
	}

	return &Client{rdb: rdb, addr: addr}, nil
}

// Enabled reports whether a connection exists
func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Addr returns host:port, empty when disabled
func (c *Client) Addr() string {
	if c == nil {
		return ""
	}
	return c.addr
}

// Ping checks the connection; a disabled client is always healthy
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Close closes the connection, if any
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

// Redis returns the underlying go-redis client (nil when disabled)
func (c *Client) Redis() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}
