package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/safety_map/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

type fakeSender struct {
	calls    atomic.Int32
	failures int32
	last     AlertEvent
}

func (f *fakeSender) Send(_ context.Context, event AlertEvent) error {
	n := f.calls.Add(1)
	f.last = event
	if n <= f.failures {
		return errors.New("smtp unavailable")
	}
	return nil
}

func newTestWorker(t *testing.T, sender Sender, cfg *config.Config) *AlertWorker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewAlertWorker(nil, sender, logger, cfg, nil)
}

func testEvent() AlertEvent {
	return AlertEvent{
		Kind:      KindSOSContact,
		Recipient: "mother@example.com",
		UserName:  "Nadia",
		Area:      "Banasree",
		Message:   "Emergency SOS triggered.",
		Timestamp: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProcessAlertEvent_EmailAndWebhook(t *testing.T) {
	var gotSignature, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := &fakeSender{}
	worker := newTestWorker(t, sender, &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	worker.processAlertEvent(context.Background(), event, string(payload))

	assert.Equal(t, int32(1), sender.calls.Load())
	assert.Equal(t, "mother@example.com", sender.last.Recipient)
	assert.Equal(t, string(payload), gotBody)
	assert.Equal(t, generateHMACSHA256(string(payload), "s3cret"), gotSignature)
}

func TestProcessAlertEvent_RetriesEmail(t *testing.T) {
	sender := &fakeSender{failures: 2}
	worker := newTestWorker(t, sender, &config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	worker.processAlertEvent(context.Background(), testEvent(), "{}")

	assert.Equal(t, int32(3), sender.calls.Load())
}

func TestWithRetries_GivesUp(t *testing.T) {
	worker := newTestWorker(t, nil, &config.Config{
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	var attempts int
	err := worker.withRetries(context.Background(), worker.logger.WithField("test", true), "webhook", func() error {
		attempts++
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, 2, attempts)
	assert.Contains(t, err.Error(), "webhook delivery failed after 2 attempts")
}

func TestWithRetries_StopsOnCancel(t *testing.T) {
	worker := newTestWorker(t, nil, &config.Config{
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := worker.withRetries(ctx, worker.logger.WithField("test", true), "email", func() error {
		return errors.New("boom")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPostWebhook_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(t, nil, &config.Config{WebhookURL: server.URL, WebhookTimeout: time.Second})

	err := worker.postWebhook(context.Background(), "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestGenerateHMACSHA256(t *testing.T) {
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key"))
	assert.NotEqual(t, generateHMACSHA256("payload", "key"), generateHMACSHA256("payload", "other"))
}
