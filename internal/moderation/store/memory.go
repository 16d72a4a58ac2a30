package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"localdir/internal/moderation/models"
	"localdir/pkg/platform/sentinel"
)

// InMemory keeps entities in process memory, one map per variant.
type InMemory struct {
	mu       sync.RWMutex
	entities map[models.EntityType]map[string]*models.Entity
}

func NewInMemory() *InMemory {
	s := &InMemory{entities: make(map[models.EntityType]map[string]*models.Entity)}
	for t := range models.Registry {
		s.entities[t] = make(map[string]*models.Entity)
	}
	return s
}

// Create inserts or replaces an entity.
func (s *InMemory) Create(_ context.Context, e *models.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.entities[e.Type]
	if !ok {
		return sentinel.ErrNotFound
	}
	clone := *e
	byID[e.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[entityType][id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

// UpdateStatus writes to only when the stored status equals from.
func (s *InMemory) UpdateStatus(_ context.Context, entityType models.EntityType, id string, from, to models.Status, now time.Time) (*models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[entityType][id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if e.Status != from {
		return nil, sentinel.ErrConflict
	}
	e.Status = to
	e.UpdatedAt = now
	clone := *e
	return &clone, nil
}

func (s *InMemory) List(_ context.Context, entityType models.EntityType, q models.ListQuery) ([]*models.Entity, error) {
	s.mu.RLock()
	matched := make([]*models.Entity, 0)
	for _, e := range s.entities[entityType] {
		if q.Status == "" || e.Status == q.Status {
			clone := *e
			matched = append(matched, &clone)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	if q.Offset < 0 || q.Offset >= len(matched) {
		return []*models.Entity{}, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (s *InMemory) CountByStatus(_ context.Context, entityType models.EntityType, status models.Status) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.entities[entityType] {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}
