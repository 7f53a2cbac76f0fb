package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dictchannels/portal/internal/config"
)

type SendGridClient struct {
	client *sendgrid.Client
	from   *sgmail.Email
	logger zerolog.Logger
}

func NewSendGridClient(cfg config.MailConfig, logger zerolog.Logger) *SendGridClient {
	return &SendGridClient{
		client: sendgrid.NewSendClient(cfg.SendGridKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		logger: logger.With().Str("component", "mail").Logger(),
	}
}

func (c *SendGridClient) Send(ctx context.Context, msg Message) error {
	m := sgmail.NewSingleEmail(c.from, msg.Subject, sgmail.NewEmail("", msg.To), msg.Body, "")

	resp, err := c.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected mail: status %d", resp.StatusCode)
	}

	c.logger.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail sent")
	return nil
}
