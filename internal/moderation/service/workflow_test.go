package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"localdir/internal/audit"
	auditmemory "localdir/internal/audit/store/memory"
	"localdir/internal/moderation/models"
	"localdir/internal/moderation/store"
	"localdir/internal/notification"
	"localdir/pkg/pagination"
	"localdir/pkg/requestcontext"
)

type captureSender struct {
	sent []notification.Message
	fail bool
}

func (c *captureSender) Send(_ context.Context, msg notification.Message) notification.Outcome {
	if c.fail {
		return notification.Outcome{Err: fmt.Errorf("provider unavailable")}
	}
	c.sent = append(c.sent, msg)
	return notification.Outcome{ID: fmt.Sprintf("m%d", len(c.sent))}
}

// WorkflowSuite runs the workflow against the in-memory stores and the real
// audit and notification services.
type WorkflowSuite struct {
	suite.Suite
	entities *store.InMemory
	audit    *audit.Service
	sender   *captureSender
	service  *Service
	ctx      context.Context
	base     time.Time
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowSuite))
}

func (s *WorkflowSuite) SetupTest() {
	s.entities = store.NewInMemory()
	s.audit = audit.NewService(auditmemory.NewInMemoryStore())
	s.sender = &captureSender{}
	notifier := notification.NewService(s.sender, notification.NewTemplates(""))

	var err error
	s.service, err = New(s.entities, s.audit, notifier)
	s.Require().NoError(err)

	s.base = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.base.Add(24*time.Hour))
}

func (s *WorkflowSuite) add(t models.EntityType, id string, status models.Status, age time.Duration) {
	s.Require().NoError(s.entities.Create(context.Background(), &models.Entity{
		ID:         id,
		Type:       t,
		Name:       "Acme",
		Status:     status,
		OwnerID:    "owner-1",
		OwnerEmail: "a@x.com",
		CreatedAt:  s.base.Add(-age),
	}))
}

func (s *WorkflowSuite) trail(t models.EntityType, id string) []*audit.Entry {
	entries, err := s.audit.GetEntityTrail(context.Background(), string(t), id)
	s.Require().NoError(err)
	return entries
}

func (s *WorkflowSuite) TestApproveThenRepeat() {
	s.add(models.EntityBusiness, "business-1", models.StatusPending, 0)

	result, err := s.service.Transition(s.ctx, models.TransitionRequest{
		Type: models.EntityBusiness, ID: "business-1", Target: models.StatusApproved, ActorID: "admin-1",
	})
	s.Require().NoError(err)
	s.True(result.Changed)
	s.Equal(models.StatusApproved, result.Data.Status)

	entries := s.trail(models.EntityBusiness, "business-1")
	s.Require().Len(entries, 1)
	s.Equal("APPROVE_BUSINESS", entries[0].Action)
	s.Equal("business-1", entries[0].EntityID)

	s.Require().Len(s.sender.sent, 1)
	s.Equal([]string{"a@x.com"}, s.sender.sent[0].To)
	s.Contains(s.sender.sent[0].Subject, "aprovado")
	s.Contains(s.sender.sent[0].Subject, "approved")

	again, err := s.service.Transition(s.ctx, models.TransitionRequest{
		Type: models.EntityBusiness, ID: "business-1", Target: models.StatusApproved, ActorID: "admin-1",
	})
	s.Require().NoError(err)
	s.False(again.Changed)
	s.Len(s.trail(models.EntityBusiness, "business-1"), 1)
	s.Len(s.sender.sent, 1)
}

func (s *WorkflowSuite) TestNotificationFailureKeepsAuditAndStatus() {
	s.add(models.EntityProfessional, "pro-1", models.StatusPending, 0)
	s.sender.fail = true

	_, err := s.service.Reject(s.ctx, models.EntityProfessional, "pro-1", "admin-1", "incomplete profile")
	s.Require().NoError(err)

	stored, err := s.entities.FindByID(context.Background(), models.EntityProfessional, "pro-1")
	s.Require().NoError(err)
	s.Equal(models.StatusRejected, stored.Status)

	entries := s.trail(models.EntityProfessional, "pro-1")
	s.Require().Len(entries, 1)
	s.Contains(entries[0].Detail, "incomplete profile")
}

func (s *WorkflowSuite) TestOwnerWithoutEmail() {
	s.Require().NoError(s.entities.Create(context.Background(), &models.Entity{
		ID: "job-9", Type: models.EntityJob, Name: "Cozinheiro", Status: models.StatusPending, CreatedAt: s.base,
	}))

	result, err := s.service.Approve(s.ctx, models.EntityJob, "job-9", "admin-1")
	s.Require().NoError(err)
	s.True(result.Changed)
	s.Empty(s.sender.sent)
	s.Len(s.trail(models.EntityJob, "job-9"), 1)
}

func (s *WorkflowSuite) TestListPending() {
	s.add(models.EntityBusiness, "b1", models.StatusPending, 3*time.Hour)
	s.add(models.EntityBusiness, "b2", models.StatusPending, time.Hour)
	s.add(models.EntityBusiness, "b3", models.StatusApproved, 0)
	s.add(models.EntityProfessional, "p1", models.StatusPending, 2*time.Hour)
	s.add(models.EntityJob, "j2", models.StatusPending, time.Hour)
	s.add(models.EntityJob, "j1", models.StatusPending, time.Hour)

	s.Run("all variants", func() {
		page, err := s.service.ListPending(s.ctx, models.PendingQuery{Page: 1, Limit: 10})
		s.Require().NoError(err)
		s.Equal(5, page.Total)
		s.Equal(1, page.PageCount)
		s.Equal(1, page.CurrentPage)
		s.Len(page.Items[models.EntityBusiness], 2)
		s.Equal("b2", page.Items[models.EntityBusiness][0].ID, "newest first")
		s.Equal("j1", page.Items[models.EntityJob][0].ID, "ties by id")
		s.Len(page.Items[models.EntityProfessional], 1)
	})

	s.Run("single variant", func() {
		t := models.EntityBusiness
		page, err := s.service.ListPending(s.ctx, models.PendingQuery{Type: &t, Page: 1, Limit: 10})
		s.Require().NoError(err)
		s.Equal(2, page.Total)
		s.Len(page.Items[models.EntityBusiness], 2)
		s.NotNil(page.Items[models.EntityProfessional])
		s.Empty(page.Items[models.EntityProfessional])
		s.Empty(page.Items[models.EntityJob])
	})

	s.Run("pages use the default and clamp", func() {
		page, err := s.service.ListPending(s.ctx, models.PendingQuery{Page: 2, Limit: 1})
		s.Require().NoError(err)
		s.Equal(5, page.PageCount)
		s.Equal(2, page.CurrentPage)
		s.Empty(page.Items[models.EntityProfessional])

		page, err = s.service.ListPending(s.ctx, models.PendingQuery{Page: -3, Limit: 0})
		s.Require().NoError(err)
		s.Equal(pagination.DefaultPage, page.CurrentPage)
	})

	s.Run("empty queue", func() {
		empty, err := New(store.NewInMemory(), s.audit, notification.NewService(s.sender, notification.NewTemplates("")))
		s.Require().NoError(err)
		page, err := empty.ListPending(s.ctx, models.PendingQuery{})
		s.Require().NoError(err)
		s.Equal(0, page.Total)
		s.Equal(0, page.PageCount)
	})
}

func (s *WorkflowSuite) TestStats() {
	s.add(models.EntityBusiness, "b1", models.StatusPending, 0)
	s.add(models.EntityBusiness, "b2", models.StatusApproved, 0)
	s.add(models.EntityJob, "j1", models.StatusRejected, 0)

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.TypeStats{Pending: 1, Approved: 1, Total: 2}, stats.ByType[models.EntityBusiness])
	s.Equal(models.TypeStats{Rejected: 1, Total: 1}, stats.ByType[models.EntityJob])
	s.Equal(1, stats.TotalPending)
}
