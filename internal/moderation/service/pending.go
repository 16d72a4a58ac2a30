package service

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"localdir/internal/moderation/models"
	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/pagination"
)

// ListPending returns entities awaiting moderation, newest first, grouped by
// variant. Every registered variant appears in Items; those not queried are
// empty. Total is the sum of the queried variants' pending counts.
func (s *Service) ListPending(ctx context.Context, q models.PendingQuery) (*models.PendingPage, error) {
	page := pagination.New(q.Page, q.Limit)

	types := models.EntityTypes()
	if q.Type != nil {
		if _, ok := models.Registry[*q.Type]; !ok {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid item type "+string(*q.Type))
		}
		types = []models.EntityType{*q.Type}
	}

	ctx, span := s.tracer.Start(ctx, "moderation.ListPending", trace.WithAttributes(
		attribute.Int("page", page.Page),
		attribute.Int("limit", page.Limit),
		attribute.Int("variants", len(types)),
	))
	defer span.End()

	items := make(map[models.EntityType][]*models.Entity, len(models.Registry))
	for t := range models.Registry {
		items[t] = []*models.Entity{}
	}
	counts := make([]int, len(types))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			list, err := s.store.List(gctx, t, models.ListQuery{
				Status: models.StatusPending,
				Offset: page.Offset(),
				Limit:  page.Limit,
			})
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending "+string(t))
			}
			n, err := s.store.CountByStatus(gctx, t, models.StatusPending)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count pending "+string(t))
			}
			counts[i] = n
			if list != nil {
				mu.Lock()
				items[t] = list
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return &models.PendingPage{
		Items:       items,
		Total:       total,
		PageCount:   page.PageCount(total),
		CurrentPage: page.Page,
	}, nil
}

// Stats counts every variant's entities per status.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	type cell struct {
		t      models.EntityType
		status models.Status
		n      int
	}

	types := models.EntityTypes()
	cells := make([]cell, 0, len(types)*len(models.Statuses))
	for _, t := range types {
		for _, st := range models.Statuses {
			cells = append(cells, cell{t: t, status: st})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range cells {
		g.Go(func() error {
			n, err := s.store.CountByStatus(gctx, cells[i].t, cells[i].status)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count "+string(cells[i].t))
			}
			cells[i].n = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &models.Stats{ByType: make(map[models.EntityType]models.TypeStats, len(types))}
	for _, c := range cells {
		ts := stats.ByType[c.t]
		switch c.status {
		case models.StatusPending:
			ts.Pending = c.n
			stats.TotalPending += c.n
		case models.StatusApproved:
			ts.Approved = c.n
		case models.StatusRejected:
			ts.Rejected = c.n
		}
		ts.Total += c.n
		stats.ByType[c.t] = ts
	}
	return stats, nil
}
