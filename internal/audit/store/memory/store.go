package memory

import (
	"context"
	"sort"
	"sync"

	"localdir/internal/audit"
)

// InMemoryStore keeps audit entries in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []*audit.Entry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, entry *audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.entries = append(s.entries, &clone)
	return nil
}

func (s *InMemoryStore) Query(_ context.Context, filter audit.Filter, offset, limit int) ([]*audit.Entry, error) {
	matched := s.matching(filter)
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	if offset < 0 || offset >= len(matched) {
		return []*audit.Entry{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *InMemoryStore) Count(_ context.Context, filter audit.Filter) (int, error) {
	return len(s.matching(filter)), nil
}

func (s *InMemoryStore) matching(filter audit.Filter) []*audit.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*audit.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if filter.Matches(e) {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out
}
