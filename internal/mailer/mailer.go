// Package mailer delivers transactional email (OTP codes, generated passwords).
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/whenwework/platform-go/internal/config"
	"go.uber.org/zap"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the provider named in cfg.Provider.
func New(ctx context.Context, cfg config.EmailConfig, log *zap.Logger) (Mailer, error) {
	switch cfg.Provider {
	case "log", "":
		return NewLogMailer(log), nil
	case "smtp":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.From, cfg.FromName), nil
	case "ses":
		return NewSESMailer(ctx, cfg.AWSRegion, cfg.From)
	case "sendgrid":
		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.From, cfg.FromName), nil
	}
	return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
}

func OTPMessage(to, businessName, otp string, ttl time.Duration) Message {
	return Message{
		To:      to,
		ToName:  businessName,
		Subject: "Your WhenWeWork verification code",
		Text: fmt.Sprintf(
			"Hello %s,\n\nYour verification code is %s. It expires in %d minutes.\n\nIf you did not request this, ignore this email.",
			businessName, otp, int(ttl.Minutes()),
		),
	}
}

func PasswordMessage(to, name, password string) Message {
	return Message{
		To:      to,
		ToName:  name,
		Subject: "Your WhenWeWork account password",
		Text: fmt.Sprintf(
			"Hello %s,\n\nYour password is: %s\n\nPlease sign in and change it.",
			name, password,
		),
	}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Text),
	)
	return nil
}
