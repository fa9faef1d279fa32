// Package notify sends the notification emails that follow a successful
// public-site submission. Sending is best effort: every dispatch runs off
// the request path, waits at most sendTimeout, and reports failure only
// to the log. A broken mail server must never fail the caller's request.
package notify

import (
	"log"
	"time"

	"github.com/potatoco/config"
	"gopkg.in/gomail.v2"
)

// Longest we wait on a single send attempt before abandoning it.
const sendTimeout = 10 * time.Second

// Sender delivers a single email
type Sender interface {
	Send(subject, body string, to []string) error
}

// SMTPSender delivers mail through the configured SMTP server
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// Send delivers one plain-text message
func (s *SMTPSender) Send(subject, body string, to []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

var (
	sender     Sender
	adminEmail string
)

// Init wires the package to the configured SMTP server
func Init(cfg *config.MailConfig) {
	sender = &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
	adminEmail = cfg.AdminEmail
}

// SetSender replaces the sender. Used by tests to observe or fail sends.
func SetSender(s Sender) {
	sender = s
}

// SetAdminEmail overrides the admin recipient. Used by tests.
func SetAdminEmail(email string) {
	adminEmail = email
}

// dispatch sends asynchronously with a bounded wait. Errors and timeouts
// are treated identically: logged and dropped.
func dispatch(kind, subject, body string, to []string) {
	if sender == nil {
		return
	}
	s := sender
	go func() {
		done := make(chan error, 1)
		go func() {
			done <- s.Send(subject, body, to)
		}()
		select {
		case err := <-done:
			if err != nil {
				log.Printf("Failed to send %s email: %v", kind, err)
			}
		case <-time.After(sendTimeout):
			log.Printf("Gave up sending %s email after %s", kind, sendTimeout)
		}
	}()
}
