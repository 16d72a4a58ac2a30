package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an immutable record of an administrative action. Entries are
// append-only: nothing in this service updates or deletes them.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	ActorID    string    `json:"actorId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	SourceIP   string    `json:"sourceIp,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Record is the caller-supplied part of an entry. ID and CreatedAt are
// assigned at write time.
type Record struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	SourceIP   string
}

// Filter narrows audit queries. Zero values match everything. Start is
// inclusive and End exclusive.
type Filter struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Start      *time.Time
	End        *time.Time
}

// Matches reports whether e satisfies the filter. Used by the in-memory store.
func (f Filter) Matches(e *Entry) bool {
	if f.ActorID != "" && e.ActorID != f.ActorID {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	if f.Start != nil && e.CreatedAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && !e.CreatedAt.Before(*f.End) {
		return false
	}
	return true
}

// Page is one page of entries, newest first.
type Page struct {
	Entries     []*Entry `json:"entries"`
	Total       int      `json:"total"`
	PageCount   int      `json:"pageCount"`
	CurrentPage int      `json:"currentPage"`
}

// Actions recorded outside the moderation workflow.
const (
	ActionUpdateNotificationSettings = "UPDATE_NOTIFICATION_SETTINGS"
)

// EntityTypeSettings tags configuration-change entries.
const EntityTypeSettings = "settings"
