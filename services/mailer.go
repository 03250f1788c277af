package services

import "context"

// OutboundMail は送信手段に渡す完成済みメッセージです
type OutboundMail struct {
	From     string
	FromName string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer は外部のメール送信手段（SendGrid・SMTPリレーなど）を抽象化します。
// 送信は同期的に行われ、リトライは送信手段側に委ねます。
type Mailer interface {
	Send(ctx context.Context, m OutboundMail) error
}
