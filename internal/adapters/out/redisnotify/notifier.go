// Package redisnotify publishes role-addressed notifications over Redis
// pub/sub. Each role gets its own channel; frontends subscribe to the
// channel for their role and render messages as they arrive.
package redisnotify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "notifications:"

// Notifier implements ports.Notifier on a Redis client.
// Publishing is fire-and-forget: a failed publish is logged and swallowed,
// never surfaced to the business operation that triggered it.
type Notifier struct {
	client *redis.Client
	logger *slog.Logger
}

// NewNotifier creates a Redis-backed notifier.
func NewNotifier(client *redis.Client, logger *slog.Logger) *Notifier {
	return &Notifier{
		client: client,
		logger: logger.With("component", "notifier"),
	}
}

// Notify publishes message on the channel for role.
func (n *Notifier) Notify(ctx context.Context, role, message string) {
	channel := channelPrefix + strings.ToLower(role)
	if err := n.client.Publish(ctx, channel, message).Err(); err != nil {
		n.logger.Error("failed to publish notification",
			"channel", channel,
			"error", err,
		)
	}
}
