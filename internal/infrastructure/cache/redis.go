package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"vaccination-management/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis. It returns a nil client when Redis is not
// configured, which disables the features that depend on it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	if !cfg.Enabled() {
		log.Info("Redis is not configured, login lockout disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.WithField("addr", client.Options().Addr).Info("Successfully connected to Redis")

	return client, nil
}
