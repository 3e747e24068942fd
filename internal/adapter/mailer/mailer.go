// Package mailer delivers plain-text notification emails.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tooldir-backend/internal/config"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message or returns an error.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the sender selected by cfg.Driver.
func New(cfg config.MailConfig, log *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "", "log":
		return NewLogSender(log), nil
	case "smtp":
		return NewSMTPSender(cfg), nil
	default:
		return nil, fmt.Errorf("mailer: unknown driver %q", cfg.Driver)
	}
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log.With("component", "mailer")}
}

// Send logs the message.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "email (log driver)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("body_len", len(msg.Body)),
	)
	return nil
}
