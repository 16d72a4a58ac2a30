package notification

import (
	"context"
	"log/slog"

	"localdir/pkg/email"
	"localdir/pkg/requestcontext"
)

// Service renders decision messages and hands them to a Sender.
type Service struct {
	sender    Sender
	templates *Templates
	logger    *slog.Logger
	metrics   *Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(sender Sender, templates *Templates, opts ...Option) *Service {
	s := &Service{
		sender:    sender,
		templates: templates,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NotifyApproved tells the owner their listing was approved.
func (s *Service) NotifyApproved(ctx context.Context, to, label, name string) Outcome {
	return s.deliver(ctx, "approved", to, func(to string) (Message, error) {
		return s.templates.Approved(to, label, name)
	})
}

// NotifyRejected tells the owner their listing was rejected and why.
func (s *Service) NotifyRejected(ctx context.Context, to, label, name, reason string) Outcome {
	return s.deliver(ctx, "rejected", to, func(to string) (Message, error) {
		return s.templates.Rejected(to, label, name, reason)
	})
}

func (s *Service) deliver(ctx context.Context, template, to string, render func(string) (Message, error)) Outcome {
	requestID := requestcontext.RequestID(ctx)
	to, ok := email.Normalize(to)
	if !ok {
		out := Outcome{Err: ErrNoRecipient}
		s.logger.WarnContext(ctx, "notification skipped: no usable owner email",
			"request_id", requestID,
			"template", template,
		)
		s.metrics.observe(template, out)
		return out
	}

	msg, err := render(to)
	if err != nil {
		out := Outcome{Err: err}
		s.logger.ErrorContext(ctx, "notification render failed",
			"request_id", requestID,
			"template", template,
			"error", err,
		)
		s.metrics.observe(template, out)
		return out
	}

	out := s.sender.Send(ctx, msg)
	if out.Err != nil {
		s.logger.WarnContext(ctx, "notification not delivered",
			"request_id", requestID,
			"template", template,
			"error", out.Err,
		)
	} else {
		s.logger.InfoContext(ctx, "notification sent",
			"request_id", requestID,
			"template", template,
			"message_id", out.ID,
		)
	}
	s.metrics.observe(template, out)
	return out
}
