// backend-go/internal/notify/notifier.go
package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/config"
)

// Notifier delivers best-effort notifications to warehouse staff. Failures
// are the caller's to log, never to propagate: notification must not fail
// or roll back an orchestration run.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}

// New returns an SMTP-backed notifier, or a noop one when disabled.
func New(cfg config.NotifyConfig) Notifier {
	if !cfg.Enabled || cfg.SMTPHost == "" || len(cfg.Recipients) == 0 {
		return &noopNotifier{}
	}
	return &smtpNotifier{cfg: cfg}
}

type smtpNotifier struct {
	cfg config.NotifyConfig
}

func (n *smtpNotifier) Send(ctx context.Context, subject, body string) error {
	addr := net.JoinHostPort(n.cfg.SMTPHost, n.cfg.SMTPPort)

	msg := strings.Builder{}
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(n.cfg.Recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if n.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", n.cfg.SMTPUser, n.cfg.SMTPPass, n.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, n.cfg.Recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	log.Debug().Str("subject", subject).Int("recipients", len(n.cfg.Recipients)).Msg("notification sent")
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) Send(ctx context.Context, subject, body string) error {
	return nil
}
