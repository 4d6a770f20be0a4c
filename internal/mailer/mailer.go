package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound notification capability used by the contact
// service. Implementations report delivery failure via the returned error;
// the caller decides whether that failure is fatal.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail through a single SMTP account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// Disabled is used when SMTP is not configured: sends are skipped with a
// log line instead of failing every contact submission.
type Disabled struct{}

func (Disabled) Send(to, subject, body string) error {
	log.Printf("mail not configured, skipping notification to %s (%s)", to, subject)
	return nil
}
