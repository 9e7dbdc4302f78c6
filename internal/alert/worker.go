package alert

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_map/internal/config"
	"github.com/shenikar/safety_map/internal/metrics"
	"github.com/sirupsen/logrus"
)

// AlertWorker - обработчик очереди оповещений: письмо получателю и, при наличии, вебхук
type AlertWorker struct {
	redisClient *redis.Client
	sender      Sender
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *metrics.Metrics
	httpClient  *http.Client
}

// NewAlertWorker создает новый AlertWorker. sender может быть nil - тогда письма не отправляются.
func NewAlertWorker(redisClient *redis.Client, sender Sender, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		sender:      sender,
		logger:      logger,
		cfg:         cfg,
		metrics:     m,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди оповещений
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, выходим на следующей итерации
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					w.wait(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.processAlertEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *AlertWorker) processAlertEvent(ctx context.Context, event AlertEvent, rawPayload string) {
	log := w.logger.WithField("alert_kind", event.Kind).WithField("alert_area", event.Area)
	log.Debug("Processing alert event...")

	if w.sender != nil {
		err := w.withRetries(ctx, log, "email", func() error {
			return w.sender.Send(ctx, event)
		})
		if err != nil {
			log.WithError(err).Error("Failed to deliver alert e-mail")
		}
	} else {
		log.Warn("Alert e-mail sender is not configured. Skipping e-mail delivery.")
	}

	if w.cfg.WebhookURL != "" {
		err := w.withRetries(ctx, log, "webhook", func() error {
			return w.postWebhook(ctx, rawPayload)
		})
		if err != nil {
			log.WithError(err).Error("Failed to deliver alert webhook")
		}
	}
}

// withRetries повторяет доставку с экспоненциальной задержкой
func (w *AlertWorker) withRetries(ctx context.Context, log *logrus.Entry, channel string, deliver func() error) error {
	maxRetries := max(1, w.cfg.WebhookMaxRetries)
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if lastErr = deliver(); lastErr == nil {
			w.metrics.AlertDelivery(channel, metrics.StatusSuccess)
			log.WithField("channel", channel).Info("Alert delivered successfully.")
			return nil
		}
		w.metrics.AlertDelivery(channel, metrics.StatusError)
		if i == maxRetries-1 {
			break
		}
		log.WithError(lastErr).Warnf("Alert %s delivery failed. Retrying in %v. Retries left: %d", channel, delay, maxRetries-1-i)
		if !w.wait(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2 // Экспоненциальная задержка
	}
	return fmt.Errorf("%s delivery failed after %d attempts: %w", channel, maxRetries, lastErr)
}

func (w *AlertWorker) postWebhook(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

// wait ждет d или отмены контекста; возвращает false, если контекст отменен
func (w *AlertWorker) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
