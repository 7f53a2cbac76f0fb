package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/config"
)

// ConsoleClient writes mail to the log instead of delivering it.
type ConsoleClient struct {
	from   string
	logger zerolog.Logger
}

func NewConsoleClient(cfg config.MailConfig, logger zerolog.Logger) *ConsoleClient {
	return &ConsoleClient{
		from:   cfg.FromEmail,
		logger: logger.With().Str("component", "mail").Logger(),
	}
}

func (c *ConsoleClient) Send(_ context.Context, msg Message) error {
	c.logger.Info().
		Str("from", c.from).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("mail (console)")
	return nil
}
