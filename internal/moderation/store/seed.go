package store

import (
	"context"
	"fmt"
	"time"

	"localdir/internal/moderation/models"
)

// Creator is implemented by stores that accept new entities.
type Creator interface {
	Create(ctx context.Context, e *models.Entity) error
}

// SeedDemo inserts a handful of pending entities so a fresh dev instance has
// something to moderate.
func SeedDemo(ctx context.Context, c Creator, now time.Time) error {
	demo := []models.Entity{
		{ID: "business-1", Type: models.EntityBusiness, Name: "Padaria Central", OwnerID: "owner-1", OwnerEmail: "maria.silva@example.com"},
		{ID: "business-2", Type: models.EntityBusiness, Name: "Oficina do Zé", OwnerID: "owner-2", OwnerEmail: "ze.oficina@example.com"},
		{ID: "professional-1", Type: models.EntityProfessional, Name: "Ana Souza", OwnerID: "owner-3", OwnerEmail: "ana.souza@example.com"},
		{ID: "job-1", Type: models.EntityJob, Name: "Atendente de balcão", OwnerID: "owner-1", OwnerEmail: "maria.silva@example.com"},
	}
	for i := range demo {
		e := demo[i]
		e.Status = models.StatusPending
		e.CreatedAt = now.Add(-time.Duration(len(demo)-i) * time.Hour)
		e.UpdatedAt = e.CreatedAt
		if err := c.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed %s %s: %w", e.Type, e.ID, err)
		}
	}
	return nil
}
