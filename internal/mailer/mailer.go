// Package mailer sends transactional email over SMTP. Delivery is
// best-effort throughout the app: a failed send is logged by the caller and
// never fails the request.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"spudhouse/internal/config"
)

// Mailer sends a plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// New builds a Mailer from config. Without SMTP_HOST it returns a logging
// no-op so development works without a mail server.
func New(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return &logMailer{}
	}
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &smtpMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		from: cfg.SMTPFrom,
		auth: auth,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := "From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// logMailer logs instead of sending.
type logMailer struct{}

func (m *logMailer) Send(to, subject, body string) error {
	log.Printf("mailer (no SMTP_HOST configured): to=%s subject=%q\n%s", to, subject, body)
	return nil
}
