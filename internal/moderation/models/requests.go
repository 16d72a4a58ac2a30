package models

import "time"

// MaxReasonLength bounds rejection reasons.
const MaxReasonLength = 1000

// TransitionRequest asks for one entity to move to Target.
type TransitionRequest struct {
	Type     EntityType
	ID       string
	Target   Status
	ActorID  string
	Reason   string
	SourceIP string
}

// TransitionResult reports the outcome. Changed is false for the idempotent
// case where the entity already had the target status.
type TransitionResult struct {
	Changed bool    `json:"changed"`
	Message string  `json:"message"`
	Data    *Entity `json:"data"`
}

// PendingQuery selects entities awaiting moderation. A nil Type means every
// registered variant.
type PendingQuery struct {
	Type  *EntityType
	Page  int
	Limit int
}

// PendingPage groups pending entities by variant.
type PendingPage struct {
	Items       map[EntityType][]*Entity
	Total       int
	PageCount   int
	CurrentPage int
}

// ListQuery is the store-level listing request.
type ListQuery struct {
	Status Status
	Offset int
	Limit  int
}

// TypeStats counts one variant's entities per status.
type TypeStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// Stats holds per-variant counts.
type Stats struct {
	ByType       map[EntityType]TypeStats `json:"byType"`
	TotalPending int                      `json:"totalPending"`
}

// Decision is published after each state change.
type Decision struct {
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	From       Status     `json:"from"`
	To         Status     `json:"to"`
	ActorID    string     `json:"actorId"`
	Reason     string     `json:"reason,omitempty"`
	DecidedAt  time.Time  `json:"decidedAt"`
}
