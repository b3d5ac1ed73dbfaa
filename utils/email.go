package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SMTPMailer sends plain-text mail through a relay configured from the
// environment. It satisfies the services.Mailer interface.
type SMTPMailer struct {
	Host     string
	Port     string
	From     string
	Password string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		From:     os.Getenv("SMTP_FROM"),
		Password: os.Getenv("EMAIL_PASSWORD"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.From == "" || m.Password == "" {
		return fmt.Errorf("SMTP_FROM or EMAIL_PASSWORD not set")
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	if err := smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
