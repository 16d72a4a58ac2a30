package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) Outcome {
	id := "log-" + uuid.NewString()
	s.logger.InfoContext(ctx, "notification (not delivered)",
		"message_id", id,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return Outcome{ID: id}
}
