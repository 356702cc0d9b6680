package services

import (
	"fmt"
	"net/smtp"

	"github.com/Rynhardt5/forest-and-flow/internal/config"
	"github.com/Rynhardt5/forest-and-flow/internal/models"
)

// EmailService sends a plain-text copy of accepted contact submissions to the
// practice inbox. It satisfies Notifier and is only wired in when SMTP and an
// inbox address are configured.
type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
	to   string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		to:   cfg.ContactInbox,
	}
}

func (s *EmailService) ContactCopy(input models.ContactInput) error {
	subject := "New contact form message"
	if input.Subject != "" {
		subject = "Contact form: " + input.Subject
	}

	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s\r\n", input.Name, input.Email, input.Message)
	msg := []byte("Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, []string{s.to}, msg)
}
