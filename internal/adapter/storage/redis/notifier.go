package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notifier implements ports.Notifier by publishing notices to a per-account
// Redis channel. Delivery is fire-and-forget: a failed publish is logged,
// never surfaced to the caller.
type Notifier struct {
	client *goredis.Client
	prefix string
	log    zerolog.Logger
}

// NewNotifier creates a Redis pub/sub notifier.
func NewNotifier(client *goredis.Client, log zerolog.Logger) *Notifier {
	return &Notifier{
		client: client,
		prefix: "notices:",
		log:    log,
	}
}

type noticePayload struct {
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// Notify publishes a notice to the account's channel.
func (n *Notifier) Notify(ctx context.Context, accountID uuid.UUID, message string) {
	payload, err := json.Marshal(noticePayload{
		AccountID: accountID.String(),
		Message:   message,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		n.log.Error().Err(err).Msg("marshal notice")
		return
	}

	if err := n.client.Publish(ctx, n.prefix+accountID.String(), payload).Err(); err != nil {
		n.log.Error().
			Err(err).
			Str("account_id", accountID.String()).
			Msg("publish notice")
	}
}
