//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"localdir/internal/moderation/models"
	"localdir/internal/moderation/store"
	"localdir/pkg/platform/sentinel"
	"localdir/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.Postgres
	store *store.Postgres
	now   time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.StartPostgres(s.T())
	s.store = store.NewPostgres(s.pg.DB)
	s.now = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.pg.Truncate(ctx))
	s.Require().NoError(store.SeedDemo(ctx, s.store, s.now))
}

func (s *PostgresStoreSuite) TestFindAndList() {
	ctx := context.Background()

	job, err := s.store.FindByID(ctx, models.EntityJob, "job-1")
	s.Require().NoError(err)
	s.Equal("Atendente de balcão", job.Name, "jobs read their title column")
	s.Equal(models.StatusPending, job.Status)

	_, err = s.store.FindByID(ctx, models.EntityJob, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)

	list, err := s.store.List(ctx, models.EntityBusiness, models.ListQuery{Status: models.StatusPending, Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("business-1", list[0].ID)

	n, err := s.store.CountByStatus(ctx, models.EntityBusiness, models.StatusPending)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *PostgresStoreSuite) TestConditionalUpdate() {
	ctx := context.Background()

	e, err := s.store.UpdateStatus(ctx, models.EntityBusiness, "business-1", models.StatusPending, models.StatusApproved, s.now)
	s.Require().NoError(err)
	s.Equal(models.StatusApproved, e.Status)
	s.True(e.UpdatedAt.Equal(s.now))

	_, err = s.store.UpdateStatus(ctx, models.EntityBusiness, "business-1", models.StatusPending, models.StatusRejected, s.now)
	s.ErrorIs(err, sentinel.ErrConflict)

	_, err = s.store.UpdateStatus(ctx, models.EntityBusiness, "missing", models.StatusPending, models.StatusRejected, s.now)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestConcurrentUpdatesHaveOneWinner() {
	ctx := context.Background()
	const goroutines = 25

	var (
		wg        sync.WaitGroup
		winners   atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.UpdateStatus(ctx, models.EntityProfessional, "professional-1", models.StatusPending, models.StatusApproved, s.now)
			if err == nil {
				winners.Add(1)
			} else if errors.Is(err, sentinel.ErrConflict) {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), winners.Load())
	s.Equal(int32(goroutines-1), conflicts.Load())
}
