package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учёт публикаций
type MetricsRecorder interface {
	NotificationPublished(event string, err error)
}

// RedisPublisher пишет события в Redis Stream (XADD)
type RedisPublisher struct {
	client  redis.Cmdable
	stream  string
	maxLen  int64
	metrics MetricsRecorder
	logger  Logger
}

// NewRedisPublisher создает публикатор. metrics может быть nil
func NewRedisPublisher(client redis.Cmdable, stream string, maxLen int64, metrics MetricsRecorder, logger Logger) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		stream:  stream,
		maxLen:  maxLen,
		metrics: metrics,
		logger:  logger,
	}
}

// Publish добавляет событие в стрим
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: event.values(),
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if p.metrics != nil {
		p.metrics.NotificationPublished(string(event.Type), err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s booking=%s: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	p.logger.Info("Notifications: published %s for booking=%s to %s (entry=%s)",
		event.Type, event.BookingID, event.RecipientID, id)
	return nil
}

// NopPublisher используется при выключенных уведомлениях
type NopPublisher struct {
	logger Logger
}

func NewNopPublisher(logger Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (p *NopPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Info("Notifications: disabled, skipping %s for booking=%s", event.Type, event.BookingID)
	return nil
}
