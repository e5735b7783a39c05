package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"

	"github.com/umputun/politrend/pkg/domain"
)

// EmailConfig holds SMTP settings
type EmailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Retries    int
	RetryDelay time.Duration
}

// Sender sends a raw RFC 5322 message
type Sender interface {
	Send(from string, to []string, msg []byte) error
}

// Email delivers alerts over SMTP
type Email struct {
	cfg    EmailConfig
	sender Sender
	now    func() time.Time
}

// NewEmail creates an SMTP notifier. An empty host leaves it unconfigured.
func NewEmail(cfg EmailConfig) *Email {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Retries == 0 {
		cfg.Retries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	return &Email{cfg: cfg, sender: &smtpSender{cfg: cfg}, now: time.Now}
}

// Deliver sends one email for all entities to settings.Recipient and returns the Message-ID
func (e *Email) Deliver(ctx context.Context, entities []*domain.TrackedEntity, settings domain.Settings) (string, error) {
	if e.cfg.Host == "" || e.cfg.From == "" {
		return "", ErrNotConfigured
	}
	to := strings.TrimSpace(settings.Recipient)
	if to == "" || !strings.Contains(to, "@") {
		return "", ErrNotConfigured
	}
	if len(entities) == 0 {
		return "", nil
	}

	msgID := fmt.Sprintf("<%s@politrend>", uuid.NewString())
	raw := e.buildMessage(to, msgID, render(entities))

	retrier := repeater.NewBackoff(e.cfg.Retries, e.cfg.RetryDelay, repeater.WithMaxDelay(10*time.Second))
	err := retrier.Do(ctx, func() error {
		if err := e.sender.Send(e.cfg.From, []string{to}, raw); err != nil {
			lgr.Printf("[DEBUG] smtp send to %s failed: %v", to, err)
			return err
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("send email to %s: %w", to, err)
	}
	return msgID, nil
}

// buildMessage composes a multipart/alternative message with plain and html parts
func (e *Email) buildMessage(to, msgID string, m message) []byte {
	const boundary = "politrend-alt-boundary"
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", e.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject)))
	msg.WriteString(fmt.Sprintf("Message-ID: %s\r\n", msgID))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", e.now().Format(time.RFC1123Z)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary))
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(m.Plain)
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(m.HTML)
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "--\r\n")
	return []byte(msg.String())
}

// smtpSender sends mail with net/smtp, PLAIN auth when username is set
type smtpSender struct {
	cfg EmailConfig
}

func (s *smtpSender) Send(from string, to []string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, from, to, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
