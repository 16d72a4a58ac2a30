//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"localdir/internal/audit"
	"localdir/internal/audit/store/postgres"
	"localdir/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.Postgres
	store *postgres.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.StartPostgres(s.T())
	s.store = postgres.New(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background()))
}

func (s *PostgresStoreSuite) append(at time.Time, actor, entityID string) *audit.Entry {
	e := &audit.Entry{
		ID:         uuid.New(),
		ActorID:    actor,
		Action:     "APPROVE_BUSINESS",
		EntityType: "business",
		EntityID:   entityID,
		CreatedAt:  at,
	}
	s.Require().NoError(s.store.Append(context.Background(), e))
	return e
}

func (s *PostgresStoreSuite) TestQueryOrderingAndFilters() {
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.append(base, "admin-1", "b1")
	s.append(base.Add(time.Hour), "admin-2", "b2")
	s.append(base.Add(2*time.Hour), "admin-1", "b1")

	s.Run("newest first", func() {
		entries, err := s.store.Query(ctx, audit.Filter{}, 0, 0)
		s.Require().NoError(err)
		s.Require().Len(entries, 3)
		s.True(entries[0].CreatedAt.Equal(base.Add(2 * time.Hour)))
		s.Empty(entries[0].SourceIP)
	})

	s.Run("filter and count agree", func() {
		f := audit.Filter{ActorID: "admin-1", EntityID: "b1"}
		total, err := s.store.Count(ctx, f)
		s.Require().NoError(err)
		s.Equal(2, total)

		entries, err := s.store.Query(ctx, f, 1, 1)
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.True(entries[0].CreatedAt.Equal(base))
	})

	s.Run("end bound is exclusive", func() {
		end := base.Add(time.Hour)
		total, err := s.store.Count(ctx, audit.Filter{End: &end})
		s.Require().NoError(err)
		s.Equal(1, total)
	})
}
