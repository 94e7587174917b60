// Package notification delivers the outbound emails produced by the
// approval workflow. Delivery is fire-and-forget: callers log failures
// and never surface them.
package notification

import (
	"context"
	"fmt"
	"net/smtp"

	log "github.com/sirupsen/logrus"

	"socialdesk/internal/config"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewNotifier returns the SMTP notifier when SMTP_HOST is configured and
// a log-only notifier otherwise, so development setups need no mail server.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.SMTP.Host == "" {
		return &LogNotifier{}
	}
	return &SMTPNotifier{cfg: cfg}
}

type SMTPNotifier struct {
	cfg *config.Config
}

func (n *SMTPNotifier) Send(_ context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%s", n.cfg.SMTP.Host, n.cfg.SMTP.Port)

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.SMTP.From, to, subject, body))

	var auth smtp.Auth
	if n.cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.SMTP.Username, n.cfg.SMTP.Password, n.cfg.SMTP.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.SMTP.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

// LogNotifier only logs the message. Used when no SMTP server is configured.
type LogNotifier struct{}

func (n *LogNotifier) Send(_ context.Context, to, subject, body string) error {
	log.WithFields(log.Fields{"to": to, "subject": subject}).Info("notification (log only)")
	return nil
}
