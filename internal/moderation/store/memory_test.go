package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"localdir/internal/moderation/models"
	"localdir/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(SeedDemo(s.ctx, s.store, s.now))
}

func (s *InMemorySuite) TestFindByID() {
	e, err := s.store.FindByID(s.ctx, models.EntityBusiness, "business-1")
	s.Require().NoError(err)
	s.Equal("Padaria Central", e.Name)

	_, err = s.store.FindByID(s.ctx, models.EntityJob, "business-1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestUpdateStatusCompareAndSwap() {
	s.Run("matching from status writes", func() {
		e, err := s.store.UpdateStatus(s.ctx, models.EntityBusiness, "business-1", models.StatusPending, models.StatusApproved, s.now)
		s.Require().NoError(err)
		s.Equal(models.StatusApproved, e.Status)
		s.Equal(s.now, e.UpdatedAt)
	})

	s.Run("stale from status conflicts", func() {
		_, err := s.store.UpdateStatus(s.ctx, models.EntityBusiness, "business-1", models.StatusPending, models.StatusRejected, s.now)
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("unknown id", func() {
		_, err := s.store.UpdateStatus(s.ctx, models.EntityBusiness, "nope", models.StatusPending, models.StatusRejected, s.now)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

// Concurrent transitions of one entity produce exactly one winner.
func (s *InMemorySuite) TestConcurrentUpdatesHaveOneWinner() {
	const goroutines = 20
	var (
		wg        sync.WaitGroup
		winners   atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.UpdateStatus(s.ctx, models.EntityJob, "job-1", models.StatusPending, models.StatusApproved, s.now)
			switch err {
			case nil:
				winners.Add(1)
			case sentinel.ErrConflict:
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), winners.Load())
	s.Equal(int32(goroutines-1), conflicts.Load())
}

func (s *InMemorySuite) TestListAndCount() {
	list, err := s.store.List(s.ctx, models.EntityBusiness, models.ListQuery{Status: models.StatusPending, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("business-2", list[0].ID, "newest first")

	list, err = s.store.List(s.ctx, models.EntityBusiness, models.ListQuery{Status: models.StatusPending, Offset: 5, Limit: 10})
	s.Require().NoError(err)
	s.Empty(list)

	list, err = s.store.List(s.ctx, models.EntityBusiness, models.ListQuery{Status: models.StatusPending, Offset: -20, Limit: 10})
	s.Require().NoError(err)
	s.Empty(list, "negative offsets select nothing")

	n, err := s.store.CountByStatus(s.ctx, models.EntityBusiness, models.StatusPending)
	s.Require().NoError(err)
	s.Equal(2, n)
}
