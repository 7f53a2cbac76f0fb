package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/config"
)

// Message is a plain-text notification. Form alerts and welcome mails
// carry no markup, so there is no HTML body.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Client delivers notification mail. Callers treat delivery as
// best-effort; a failed send is logged and never propagated to the
// visitor.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// NewClient picks the provider configured under mail.provider. Anything
// other than "sendgrid" falls back to console output, which is what
// local development runs on.
func NewClient(cfg config.MailConfig, logger zerolog.Logger) Client {
	if cfg.Provider == "sendgrid" && cfg.SendGridKey != "" {
		return NewSendGridClient(cfg, logger)
	}
	return NewConsoleClient(cfg, logger)
}
