package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "sos_alerts"
)

// Виды оповещений
const (
	KindSOSContact   = "sos_contact"
	KindSOSVolunteer = "sos_volunteer"
	KindReport       = "report"
)

// AlertEvent - оповещение одного получателя
type AlertEvent struct {
	Kind      string    `json:"kind"`
	Recipient string    `json:"recipient"`
	UserName  string    `json:"user_name"`
	Area      string    `json:"area"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Subject возвращает тему письма
func (e AlertEvent) Subject() string {
	return fmt.Sprintf("%s reported an incident", e.UserName)
}

// Body возвращает текст письма
func (e AlertEvent) Body() string {
	area := e.Area
	if area == "" {
		area = "Unknown area"
	}
	return fmt.Sprintf("%s reported an emergency in the area: %s\n\nMessage: %s", e.UserName, area, e.Message)
}

// AlertPublisher - интерфейс для постановки оповещений в очередь
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher на списке Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish кладет оповещение в левую часть очереди
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
