package services

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPMailer はSMTPリレー経由でメールを送信します
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
}

// NewSMTPMailer はSMTPMailerを作成します
func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass}
}

// Send はメッセージをSMTPリレーに引き渡します
func (s *SMTPMailer) Send(_ context.Context, m OutboundMail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.From, m.FromName))
	msg.SetHeader("To", m.To...)
	if m.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.ReplyTo)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.TextBody)
	msg.AddAlternative("text/html", m.HTMLBody)

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}
