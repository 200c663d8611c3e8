// Package mailx delivers plain text notification mail.
package mailx

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"
)

// Message is a single plain text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

var ErrNoRecipient = errors.New("mailx: message has no recipient")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender delivers through an SMTP relay. Port 465 uses implicit TLS,
// other ports upgrade with STARTTLS when the server offers it.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errors.New("mailx: SMTP host not configured")
	}
	if cfg.Port <= 0 {
		cfg.Port = 465
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if !strings.Contains(from, "@") {
		return nil, fmt.Errorf("mailx: invalid sender address %q", from)
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	d.SSL = cfg.Port == 465

	return &SMTPSender{dialer: d, from: from}, nil
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm, err := s.compose(m)
	if err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("mailx: send to %s: %w", m.To, err)
	}
	return nil
}

func (s *SMTPSender) compose(m Message) (*gomail.Message, error) {
	if strings.TrimSpace(m.To) == "" {
		return nil, ErrNoRecipient
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", s.from)
	gm.SetHeader("To", m.To)
	gm.SetHeader("Subject", m.Subject)
	gm.SetBody("text/plain", m.Body)
	return gm, nil
}

// LogSender writes messages to a logger instead of delivering them. It is
// used when no SMTP relay is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(ctx context.Context, m Message) error {
	if strings.TrimSpace(m.To) == "" {
		return ErrNoRecipient
	}
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "mail not delivered, no SMTP relay configured",
		slog.String("to", m.To),
		slog.String("subject", m.Subject))
	l.DebugContext(ctx, "mail body", slog.String("body", m.Body))
	return nil
}
