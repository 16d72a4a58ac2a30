package service

import (
	"context"
	"time"

	"localdir/internal/audit"
	"localdir/internal/moderation/models"
	"localdir/internal/notification"
)

// EntityStore persists moderatable entities. FindByID returns
// sentinel.ErrNotFound for unknown ids. UpdateStatus only writes when the
// stored status still equals from, and returns sentinel.ErrConflict otherwise.
type EntityStore interface {
	FindByID(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error)
	UpdateStatus(ctx context.Context, entityType models.EntityType, id string, from, to models.Status, now time.Time) (*models.Entity, error)
	List(ctx context.Context, entityType models.EntityType, query models.ListQuery) ([]*models.Entity, error)
	CountByStatus(ctx context.Context, entityType models.EntityType, status models.Status) (int, error)
}

// AuditLogger records administrative actions. A nil entry means the write
// failed; it is never an error for the caller.
type AuditLogger interface {
	LogAction(ctx context.Context, rec audit.Record) *audit.Entry
}

// Notifier tells entity owners about decisions.
type Notifier interface {
	NotifyApproved(ctx context.Context, to, label, name string) notification.Outcome
	NotifyRejected(ctx context.Context, to, label, name, reason string) notification.Outcome
}

// DecisionPublisher broadcasts state changes to other services.
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, decision models.Decision) error
}

// CountInvalidator drops cached counts for a variant after its statuses change.
type CountInvalidator interface {
	InvalidateCounts(ctx context.Context, entityType models.EntityType) error
}
