package notification

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/crmkit/leads-service/internal/config"
)

// EmailSender delivers notifications over SMTP.
type EmailSender struct {
	cfg    config.SMTPConfig
	logger *zap.SugaredLogger
}

// NewEmailSender creates a new SMTP sender instance.
func NewEmailSender(cfg config.SMTPConfig, logger *zap.SugaredLogger) *EmailSender {
	return &EmailSender{cfg: cfg, logger: logger}
}

// Send renders the message and makes a single SMTP delivery attempt.
func (s *EmailSender) Send(msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	subject, body, err := render(msg)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	s.logger.Infow("notification sent", "template", msg.Template, "to", msg.To)
	return nil
}

// LogSender records notifications in the log instead of delivering
// them. Used when SMTP is disabled (local development, tests).
type LogSender struct {
	logger *zap.SugaredLogger
}

// NewLogSender creates a new log-only sender instance.
func NewLogSender(logger *zap.SugaredLogger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the rendered message without delivering it.
func (s *LogSender) Send(msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	subject, _, err := render(msg)
	if err != nil {
		return err
	}

	s.logger.Infow("notification suppressed (smtp disabled)",
		"template", msg.Template, "to", msg.To, "subject", subject)
	return nil
}

// NewSender returns an SMTP sender when delivery is enabled and a
// log-only sender otherwise.
func NewSender(cfg config.SMTPConfig, logger *zap.SugaredLogger) Sender {
	if cfg.Enabled {
		return NewEmailSender(cfg, logger)
	}
	return NewLogSender(logger)
}
