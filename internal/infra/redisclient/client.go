package redisclient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options параметры подключения к Redis
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient создает клиент Redis и проверяет соединение
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}
