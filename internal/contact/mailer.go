// Package contact delivers messages from the portfolio contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

var (
	ErrNotConfigured  = errors.New("SMTP credentials not configured")
	ErrInvalidMessage = errors.New("invalid contact message")
)

// Message is one contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate checks that every field is filled and the sender address has no
// header-breaking characters.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrInvalidMessage)
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return fmt.Errorf("%w: line breaks in name or email", ErrInvalidMessage)
	}
	return nil
}

type Mailer interface {
	Send(ctx context.Context, m Message) error
}

type SMTPMailer struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string

	// sendMail defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host, port, user, pass, to string) *SMTPMailer {
	if to == "" {
		to = user
	}
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, ToEmail: to, sendMail: smtp.SendMail}
}

func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if s.User == "" || s.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	addr := net.JoinHostPort(s.Host, s.Port)
	if err := s.sendMail(addr, auth, s.User, []string{s.ToEmail}, s.compose(m)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (s *SMTPMailer) compose(m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	return []byte("To: " + s.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.User + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
