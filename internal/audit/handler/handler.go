package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"localdir/internal/audit"
	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/pagination"
	"localdir/pkg/platform/httputil"
	"localdir/pkg/requestcontext"
)

// Service is the read side of the audit trail.
type Service interface {
	GetLogs(ctx context.Context, filter audit.Filter, page pagination.Params) (*audit.Page, error)
	GetEntityTrail(ctx context.Context, entityType, entityID string) ([]*audit.Entry, error)
}

// Handler serves audit queries to administrators.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts audit endpoints on an already-authorized router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit-logs", h.HandleListLogs)
	r.Get("/audit-trail/{type}/{id}", h.HandleEntityTrail)
}

// TrailResponse wraps an entity's full history.
type TrailResponse struct {
	Entries []*audit.Entry `json:"entries"`
}

// HandleListLogs handles GET /audit-logs.
func (h *Handler) HandleListLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	q := r.URL.Query()

	filter, err := parseFilter(q.Get("actorId"), q.Get("action"), q.Get("entityType"), q.Get("entityId"), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.GetLogs(ctx, filter, pagination.Parse(q.Get("page"), q.Get("limit")))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit logs",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

// HandleEntityTrail handles GET /audit-trail/{type}/{id}.
func (h *Handler) HandleEntityTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entityType := chi.URLParam(r, "type")
	entityID := chi.URLParam(r, "id")

	entries, err := h.service.GetEntityTrail(ctx, entityType, entityID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load audit trail",
			"request_id", requestcontext.RequestID(ctx),
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TrailResponse{Entries: entries})
}

func parseFilter(actorID, action, entityType, entityID, rawStart, rawEnd string) (audit.Filter, error) {
	f := audit.Filter{
		ActorID:    strings.TrimSpace(actorID),
		Action:     strings.ToUpper(strings.TrimSpace(action)),
		EntityType: strings.ToLower(strings.TrimSpace(entityType)),
		EntityID:   strings.TrimSpace(entityID),
	}

	start, _, err := parseDate(rawStart)
	if err != nil {
		return f, dErrors.New(dErrors.CodeValidation, "startDate must be RFC 3339 or YYYY-MM-DD")
	}
	end, dateOnly, err := parseDate(rawEnd)
	if err != nil {
		return f, dErrors.New(dErrors.CodeValidation, "endDate must be RFC 3339 or YYYY-MM-DD")
	}
	// A bare end date includes the whole day.
	if end != nil && dateOnly {
		next := end.AddDate(0, 0, 1)
		end = &next
	}
	f.Start, f.End = start, end
	return f, nil
}

func parseDate(raw string) (*time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, false, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}
