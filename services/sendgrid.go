package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer はSendGrid API経由でメールを送信します
type SendGridMailer struct {
	apiKey string
}

// NewSendGridMailer はSendGridMailerを作成します
func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey}
}

// Send はメッセージをSendGridに引き渡します
func (s *SendGridMailer) Send(ctx context.Context, m OutboundMail) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(m.FromName, m.From))
	message.Subject = m.Subject

	personalization := mail.NewPersonalization()
	for _, to := range m.To {
		personalization.AddTos(mail.NewEmail("", to))
	}
	message.AddPersonalizations(personalization)

	// 問い合わせ者に直接返信できるようにReply-Toを設定
	if m.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", m.ReplyTo))
	}

	message.AddContent(
		mail.NewContent("text/plain", m.TextBody),
		mail.NewContent("text/html", m.HTMLBody),
	)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}

	// SendGridのレスポンス検証
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
