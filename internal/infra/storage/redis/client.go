// Package redis implements the persistence interfaces on top of a Redis
// server using the go-redis client.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// client wraps the go-redis connection.
type client struct {
	conn *redis.Client
}

// Close releases the underlying connection.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
