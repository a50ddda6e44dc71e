package service

import (
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"
)

// Mailer delivers plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	cfg SMTPConfig
	log zerolog.Logger
}

func NewSMTPMailer(cfg SMTPConfig, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log.With().Str("component", "mailer").Logger()}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := e.Send(addr, auth); err != nil {
		m.log.Error().Err(err).Str("to", to).Msg("failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
