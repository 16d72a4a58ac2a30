//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"localdir/internal/platform/postgres"
)

// Postgres is a throwaway database with the service schema applied.
type Postgres struct {
	URL string
	DB  *sql.DB
}

// StartPostgres runs postgres:16-alpine, applies the schema and terminates
// the container when the test ends.
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("localdir"),
		tcpostgres.WithUsername("localdir"),
		tcpostgres.WithPassword("localdir"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %v", err)
	}

	db, err := postgres.Open(ctx, url)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := postgres.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &Postgres{URL: url, DB: db}
}

// Truncate clears every table owned by the service.
func (p *Postgres) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, `TRUNCATE businesses, professionals, jobs, audit_logs`)
	return err
}
