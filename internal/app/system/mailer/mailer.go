// internal/app/system/mailer/mailer.go
//
// Package mailer delivers transactional email over SMTP. The flow package
// depends on a narrow Sender interface; this is the real implementation
// behind it. Delivery failures are returned to the caller — there is no
// retry here, recovery is the user-triggered resend path.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Config holds SMTP connection and sender-identity settings.
type Config struct {
	Host      string
	Port      int
	Username  string // empty means no auth (Mailpit and friends)
	Password  string
	From      string
	FromName  string
	SiteName  string        // used in subjects and bodies, e.g. "EventNet"
	OTPExpiry time.Duration // stated validity window in OTP emails
}

// Email is one outbound message. Both bodies are sent as a
// multipart/alternative pair.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer sends Email values over a configured SMTP relay.
type Mailer struct {
	client *mail.Client
	cfg    Config
	log    *zap.Logger
}

// New builds a Mailer from cfg. The connection is lazy: nothing is dialed
// until Send.
func New(cfg Config, logger *zap.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{client: client, cfg: cfg, log: logger}, nil
}

// Send delivers one message. The context bounds the whole dial-and-send.
func (m *Mailer) Send(ctx context.Context, e Email) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.TextBody)
	if e.HTMLBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, e.HTMLBody)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", e.To, err)
	}

	m.log.Info("email sent",
		zap.String("to", e.To),
		zap.String("subject", e.Subject))
	return nil
}

// SendOTP builds and delivers the verification-code email. This satisfies
// the flow package's Sender interface.
func (m *Mailer) SendOTP(ctx context.Context, to, name, code string) error {
	e := BuildOTPEmail(OTPEmailData{
		SiteName:  m.cfg.SiteName,
		Name:      name,
		Code:      code,
		ExpiresIn: formatExpiry(m.cfg.OTPExpiry),
	})
	e.To = to
	return m.Send(ctx, e)
}
