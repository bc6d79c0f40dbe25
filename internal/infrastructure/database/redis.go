package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds a Redis client for the OTP resend throttle. Returns nil
// when no address is configured; the throttle is disabled in that case.
func NewRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
