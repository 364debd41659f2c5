// Package email delivers 2FA codes out-of-band. The core only produces the
// code and attempt ID; transport (SMTP, a provider API) lives behind Client.
package email

//go:generate mockgen -destination=../../mocks/mock_email_client.go -package=mocks github.com/EleisonC/Auth-Service/internal/auth/email Client

import (
	"context"
	"log/slog"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
)

// Client sends a 2FA code to the identity that requested it.
type Client interface {
	SendTwoFACode(ctx context.Context, to domain.Email, attemptID domain.AttemptID, code domain.TwoFACode) error
}

// LogClient is the development stand-in: it records that a delivery happened
// without sending anything. The code itself is never logged.
type LogClient struct {
	logger *slog.Logger
}

func NewLogClient(logger *slog.Logger) *LogClient {
	return &LogClient{logger: logger}
}

func (c *LogClient) SendTwoFACode(ctx context.Context, to domain.Email, attemptID domain.AttemptID, code domain.TwoFACode) error {
	c.logger.InfoContext(ctx, "2fa code issued",
		slog.String("recipient", to.String()),
		slog.String("login_attempt_id", attemptID.String()),
	)

	return nil
}
