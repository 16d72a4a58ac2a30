package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"localdir/internal/moderation/models"
	"localdir/pkg/platform/sentinel"
	"localdir/pkg/platform/tx"
)

// Postgres stores entities in one table per variant. Table and column names
// come from models.Registry, never from callers.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) selectColumns(d models.Descriptor) string {
	return fmt.Sprintf("id, %s, status, owner_id, owner_email, created_at, updated_at", d.NameColumn)
}

func (s *Postgres) Create(ctx context.Context, e *models.Entity) error {
	d, ok := models.Registry[e.Type]
	if !ok {
		return sentinel.ErrNotFound
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, status, owner_id, owner_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, d.Table, d.NameColumn)
	_, err := tx.Exec(ctx, s.db).ExecContext(ctx, query,
		e.ID, e.Name, string(e.Status), e.OwnerID, e.OwnerEmail,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert %s: %w", d.Type, err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	d, ok := models.Registry[entityType]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.selectColumns(d), d.Table)
	e, err := scanEntity(tx.Exec(ctx, s.db).QueryRowContext(ctx, query, id), entityType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", entityType, err)
	}
	return e, nil
}

// UpdateStatus is a compare-and-swap on the status column. When no row
// matches, a follow-up lookup distinguishes a missing entity from a lost race.
func (s *Postgres) UpdateStatus(ctx context.Context, entityType models.EntityType, id string, from, to models.Status, now time.Time) (*models.Entity, error) {
	d, ok := models.Registry[entityType]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	query := fmt.Sprintf(`
		UPDATE %s SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s
	`, d.Table, s.selectColumns(d))

	e, err := scanEntity(tx.Exec(ctx, s.db).QueryRowContext(ctx, query, string(to), now, id, string(from)), entityType)
	if errors.Is(err, sql.ErrNoRows) {
		if _, findErr := s.FindByID(ctx, entityType, id); findErr != nil {
			return nil, findErr
		}
		return nil, sentinel.ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("update %s status: %w", entityType, err)
	}
	return e, nil
}

func (s *Postgres) List(ctx context.Context, entityType models.EntityType, q models.ListQuery) ([]*models.Entity, error) {
	d, ok := models.Registry[entityType]
	if !ok {
		return nil, sentinel.ErrNotFound
	}

	args := []any{}
	query := fmt.Sprintf(`SELECT %s FROM %s`, s.selectColumns(d), d.Table)
	if q.Status != "" {
		args = append(args, string(q.Status))
		query += ` WHERE status = $1`
	}
	query += ` ORDER BY created_at DESC, id ASC`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := tx.Exec(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", entityType, err)
	}
	defer rows.Close()

	out := []*models.Entity{}
	for rows.Next() {
		e, err := scanEntity(rows, entityType)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", entityType, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", entityType, err)
	}
	return out, nil
}

func (s *Postgres) CountByStatus(ctx context.Context, entityType models.EntityType, status models.Status) (int, error) {
	d, ok := models.Registry[entityType]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE status = $1`, d.Table)
	if err := tx.Exec(ctx, s.db).QueryRowContext(ctx, query, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", entityType, err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(row scanner, entityType models.EntityType) (*models.Entity, error) {
	var (
		e      models.Entity
		status string
	)
	if err := row.Scan(&e.ID, &e.Name, &status, &e.OwnerID, &e.OwnerEmail, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Type = entityType
	e.Status = models.Status(status)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}
