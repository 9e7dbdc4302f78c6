package alert

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nicholas-fedor/shoutrrr"
)

// Sender доставляет оповещение получателю
type Sender interface {
	Send(ctx context.Context, event AlertEvent) error
}

// EmailSender отправляет письма через shoutrrr (smtp://...).
// Адрес получателя и тема подставляются в параметры URL для каждого письма.
type EmailSender struct {
	baseURL *url.URL
	send    func(rawURL, message string) error
}

func NewEmailSender(smtpURL string) (*EmailSender, error) {
	u, err := url.Parse(smtpURL)
	if err != nil {
		return nil, fmt.Errorf("invalid alert smtp url: %w", err)
	}
	if u.Scheme != "smtp" {
		return nil, fmt.Errorf("alert smtp url must use smtp scheme, got %q", u.Scheme)
	}
	return &EmailSender{baseURL: u, send: shoutrrr.Send}, nil
}

// Send отправляет письмо
func (s *EmailSender) Send(ctx context.Context, event AlertEvent) error {
	if event.Recipient == "" {
		return fmt.Errorf("alert recipient is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.send(s.recipientURL(event), event.Body())
}

func (s *EmailSender) recipientURL(event AlertEvent) string {
	u := *s.baseURL
	q := u.Query()
	q.Set("toaddresses", event.Recipient)
	q.Set("subject", event.Subject())
	u.RawQuery = q.Encode()
	return u.String()
}
