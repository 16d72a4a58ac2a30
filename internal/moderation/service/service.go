package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"localdir/internal/audit"
	"localdir/internal/moderation/metrics"
	"localdir/internal/moderation/models"
	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/platform/sentinel"
	"localdir/pkg/requestcontext"
)

// Service runs the moderation workflow and the pending-queue reader.
//
// A transition persists the new status first; the audit entry, owner
// notification, decision event and cache invalidation that follow are
// best-effort and never undo or fail the status change.
type Service struct {
	store       EntityStore
	auditor     AuditLogger
	notifier    Notifier
	publisher   DecisionPublisher
	invalidator CountInvalidator
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPublisher enables decision events.
func WithPublisher(p DecisionPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithCountInvalidator enables cache invalidation after transitions.
func WithCountInvalidator(inv CountInvalidator) Option {
	return func(s *Service) {
		s.invalidator = inv
	}
}

func New(store EntityStore, auditor AuditLogger, notifier Notifier, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("entity store is required")
	}
	if auditor == nil {
		return nil, errors.New("audit logger is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}

	s := &Service{
		store:    store,
		auditor:  auditor,
		notifier: notifier,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer("localdir/moderation"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Approve moves an entity to APPROVED.
func (s *Service) Approve(ctx context.Context, entityType models.EntityType, id, actorID string) (*models.TransitionResult, error) {
	return s.Transition(ctx, models.TransitionRequest{
		Type:     entityType,
		ID:       id,
		Target:   models.StatusApproved,
		ActorID:  actorID,
		SourceIP: requestcontext.ClientIP(ctx),
	})
}

// Reject moves an entity to REJECTED. reason is required.
func (s *Service) Reject(ctx context.Context, entityType models.EntityType, id, actorID, reason string) (*models.TransitionResult, error) {
	return s.Transition(ctx, models.TransitionRequest{
		Type:     entityType,
		ID:       id,
		Target:   models.StatusRejected,
		ActorID:  actorID,
		Reason:   reason,
		SourceIP: requestcontext.ClientIP(ctx),
	})
}

// Transition moves one entity to req.Target.
//
// Requests for an unknown id fail with CodeNotFound before the reason is
// checked. When the entity already has the target status the result has
// Changed=false and no side effects run. A concurrent change between load and
// write is detected by the store; if the winner reached the same target the
// call reports the idempotent result, otherwise it fails with CodeConflict.
func (s *Service) Transition(ctx context.Context, req models.TransitionRequest) (*models.TransitionResult, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "moderation.Transition", trace.WithAttributes(
		attribute.String("entity.type", string(req.Type)),
		attribute.String("entity.id", req.ID),
		attribute.String("target", string(req.Target)),
	))
	defer span.End()

	result, outcome, err := s.transition(ctx, req)
	s.metrics.IncrementTransition(string(req.Type), string(req.Target), outcome)
	s.metrics.ObserveTransitionLatency(time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		return nil, err
	}
	span.SetAttributes(attribute.Bool("changed", result.Changed))
	return result, nil
}

func (s *Service) transition(ctx context.Context, req models.TransitionRequest) (*models.TransitionResult, string, error) {
	requestID := requestcontext.RequestID(ctx)

	desc, ok := models.Registry[req.Type]
	if !ok {
		return nil, "error", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid item type %q", req.Type))
	}
	if req.Target != models.StatusApproved && req.Target != models.StatusRejected {
		return nil, "error", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid target status %q", req.Target))
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, "error", dErrors.New(dErrors.CodeValidation, "itemId is required")
	}
	if strings.TrimSpace(req.ActorID) == "" {
		return nil, "error", dErrors.New(dErrors.CodeUnauthorized, "actor is required")
	}

	entity, err := s.load(ctx, desc, id)
	if err != nil {
		return nil, "error", err
	}

	reason := strings.TrimSpace(req.Reason)
	if req.Target == models.StatusRejected {
		if reason == "" {
			return nil, "error", dErrors.New(dErrors.CodeValidation, "reason is required to reject")
		}
		if utf8.RuneCountInString(reason) > models.MaxReasonLength {
			return nil, "error", dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("reason must be at most %d characters", models.MaxReasonLength))
		}
	}

	if entity.Status == req.Target {
		return unchanged(desc, entity), "unchanged", nil
	}
	if _, err := models.NextStatus(id, entity.Status, req.Target); err != nil {
		return nil, "error", err
	}

	now := requestcontext.Now(ctx)
	updated, err := s.store.UpdateStatus(ctx, req.Type, id, entity.Status, req.Target, now)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return s.resolveConflict(ctx, desc, id, req.Target)
		}
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, "error", dErrors.New(dErrors.CodeNotFound, desc.Label+" not found")
		}
		s.logger.ErrorContext(ctx, "failed to persist status",
			"request_id", requestID,
			"entity_type", req.Type,
			"entity_id", id,
			"error", err,
		)
		return nil, "error", dErrors.Wrap(err, dErrors.CodeInternal, "failed to update "+strings.ToLower(desc.Label))
	}

	s.logger.InfoContext(ctx, "moderation status changed",
		"request_id", requestID,
		"actor_id", req.ActorID,
		"entity_type", req.Type,
		"entity_id", id,
		"from", entity.Status,
		"to", updated.Status,
	)

	s.recordAudit(ctx, desc, updated, req, reason)
	s.notifyOwner(ctx, desc, updated, reason)
	s.publish(ctx, models.Decision{
		EntityType: req.Type,
		EntityID:   id,
		From:       entity.Status,
		To:         updated.Status,
		ActorID:    req.ActorID,
		Reason:     reason,
		DecidedAt:  now,
	})
	s.invalidate(ctx, req.Type)

	return &models.TransitionResult{
		Changed: true,
		Message: fmt.Sprintf("%s %s successfully", desc.Label, req.Target.Verb()),
		Data:    updated,
	}, "changed", nil
}

func (s *Service) load(ctx context.Context, desc models.Descriptor, id string) (*models.Entity, error) {
	entity, err := s.store.FindByID(ctx, desc.Type, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, desc.Label+" not found")
		}
		s.logger.ErrorContext(ctx, "failed to load entity",
			"request_id", requestcontext.RequestID(ctx),
			"entity_type", desc.Type,
			"entity_id", id,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+strings.ToLower(desc.Label))
	}
	return entity, nil
}

func (s *Service) resolveConflict(ctx context.Context, desc models.Descriptor, id string, target models.Status) (*models.TransitionResult, string, error) {
	current, err := s.load(ctx, desc, id)
	if err != nil {
		return nil, "error", err
	}
	if current.Status == target {
		return unchanged(desc, current), "unchanged", nil
	}
	s.logger.WarnContext(ctx, "concurrent status change",
		"request_id", requestcontext.RequestID(ctx),
		"entity_type", desc.Type,
		"entity_id", id,
		"status", current.Status,
		"target", target,
	)
	return nil, "conflict", dErrors.New(dErrors.CodeConflict,
		fmt.Sprintf("%s was changed concurrently and is now %s", desc.Label, strings.ToLower(string(current.Status))))
}

func unchanged(desc models.Descriptor, entity *models.Entity) *models.TransitionResult {
	return &models.TransitionResult{
		Changed: false,
		Message: fmt.Sprintf("%s already %s", desc.Label, entity.Status.Verb()),
		Data:    entity,
	}
}

func (s *Service) recordAudit(ctx context.Context, desc models.Descriptor, entity *models.Entity, req models.TransitionRequest, reason string) {
	action := desc.ApproveAction()
	detail := fmt.Sprintf("%s %q approved", desc.Label, entity.Name)
	if req.Target == models.StatusRejected {
		action = desc.RejectAction()
		detail = fmt.Sprintf("%s %q rejected. Reason: %s", desc.Label, entity.Name, reason)
	}

	entry := s.auditor.LogAction(ctx, audit.Record{
		ActorID:    req.ActorID,
		Action:     action,
		EntityType: string(desc.Type),
		EntityID:   entity.ID,
		Detail:     detail,
		SourceIP:   req.SourceIP,
	})
	if entry == nil {
		s.metrics.IncrementSideEffectFailure("audit")
		s.logger.WarnContext(ctx, "transition not audited",
			"request_id", requestcontext.RequestID(ctx),
			"action", action,
			"entity_id", entity.ID,
		)
	}
}

func (s *Service) notifyOwner(ctx context.Context, desc models.Descriptor, entity *models.Entity, reason string) {
	var outcomeErr error
	if entity.Status == models.StatusRejected {
		outcomeErr = s.notifier.NotifyRejected(ctx, entity.OwnerEmail, desc.Label, entity.Name, reason).Err
	} else {
		outcomeErr = s.notifier.NotifyApproved(ctx, entity.OwnerEmail, desc.Label, entity.Name).Err
	}
	if outcomeErr != nil {
		s.metrics.IncrementSideEffectFailure("notification")
	}
}

func (s *Service) publish(ctx context.Context, decision models.Decision) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishDecision(ctx, decision); err != nil {
		s.metrics.IncrementSideEffectFailure("event")
		s.logger.WarnContext(ctx, "decision event not published",
			"request_id", requestcontext.RequestID(ctx),
			"entity_id", decision.EntityID,
			"error", err,
		)
	}
}

func (s *Service) invalidate(ctx context.Context, entityType models.EntityType) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateCounts(ctx, entityType); err != nil {
		s.metrics.IncrementSideEffectFailure("cache")
		s.logger.WarnContext(ctx, "count cache not invalidated",
			"request_id", requestcontext.RequestID(ctx),
			"entity_type", entityType,
			"error", err,
		)
	}
}
