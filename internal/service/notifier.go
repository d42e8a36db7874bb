package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LogNotifier implements ports.Notifier by writing status messages to the log.
// Used when no redis publisher is configured.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify writes the status message at info level.
func (n *LogNotifier) Notify(_ context.Context, accountID uuid.UUID, message string) {
	n.log.Info().
		Str("account_id", accountID.String()).
		Str("notice", message).
		Msg("notification")
}
