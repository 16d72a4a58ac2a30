package audit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/pagination"
	"localdir/pkg/requestcontext"
)

// Store persists audit entries. Query with limit <= 0 returns every match.
type Store interface {
	Append(ctx context.Context, entry *Entry) error
	Query(ctx context.Context, filter Filter, offset, limit int) ([]*Entry, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

// Service records and reads the administrative audit trail.
//
// Writes are best-effort: LogAction never returns an error, so an audit
// outage cannot abort the operation being audited. A nil entry signals that
// the write did not happen.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *Metrics
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

// NewService constructs the audit service.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogAction appends one entry and returns it, or nil if it could not be written.
func (s *Service) LogAction(ctx context.Context, rec Record) *Entry {
	requestID := requestcontext.RequestID(ctx)
	if rec.ActorID == "" || rec.Action == "" || rec.EntityType == "" {
		s.logger.ErrorContext(ctx, "audit record incomplete",
			"request_id", requestID,
			"actor_id", rec.ActorID,
			"action", rec.Action,
			"entity_type", rec.EntityType,
		)
		s.metrics.incFailure()
		return nil
	}

	entry := &Entry{
		ID:         uuid.New(),
		ActorID:    rec.ActorID,
		Action:     rec.Action,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		Detail:     rec.Detail,
		SourceIP:   rec.SourceIP,
		CreatedAt:  requestcontext.Now(ctx).UTC(),
	}

	if err := s.store.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "audit write failed",
			"request_id", requestID,
			"action", entry.Action,
			"entity_type", entry.EntityType,
			"entity_id", entry.EntityID,
			"error", err,
		)
		s.metrics.incFailure()
		return nil
	}

	s.logger.InfoContext(ctx, entry.Action,
		"log_type", "audit",
		"request_id", requestID,
		"actor_id", entry.ActorID,
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID,
	)
	s.metrics.incWritten(entry.Action)
	return entry
}

// LogConfigChange records a settings change made by the actor in ctx.
func (s *Service) LogConfigChange(ctx context.Context, action, detail string) *Entry {
	return s.LogAction(ctx, Record{
		ActorID:    requestcontext.ActorID(ctx),
		Action:     action,
		EntityType: EntityTypeSettings,
		Detail:     detail,
		SourceIP:   requestcontext.ClientIP(ctx),
	})
}

// GetLogs returns one page of entries matching filter, newest first.
func (s *Service) GetLogs(ctx context.Context, filter Filter, page pagination.Params) (*Page, error) {
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return nil, dErrors.New(dErrors.CodeValidation, "endDate must not be before startDate")
	}

	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count audit logs")
	}
	entries, err := s.store.Query(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit logs")
	}
	if entries == nil {
		entries = []*Entry{}
	}

	return &Page{
		Entries:     entries,
		Total:       total,
		PageCount:   page.PageCount(total),
		CurrentPage: page.Page,
	}, nil
}

// GetEntityTrail returns every entry recorded against one entity, newest first.
func (s *Service) GetEntityTrail(ctx context.Context, entityType, entityID string) ([]*Entry, error) {
	entityType = strings.ToLower(strings.TrimSpace(entityType))
	entityID = strings.TrimSpace(entityID)
	if entityType == "" || entityID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "entity type and id are required")
	}

	entries, err := s.store.Query(ctx, Filter{EntityType: entityType, EntityID: entityID}, 0, 0)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit trail")
	}
	if entries == nil {
		entries = []*Entry{}
	}
	return entries, nil
}
