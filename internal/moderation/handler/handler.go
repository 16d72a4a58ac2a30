package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"localdir/internal/moderation/models"
	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/pagination"
	"localdir/pkg/platform/httputil"
	"localdir/pkg/requestcontext"
)

// Service is the moderation surface the handler needs.
type Service interface {
	Approve(ctx context.Context, entityType models.EntityType, id, actorID string) (*models.TransitionResult, error)
	Reject(ctx context.Context, entityType models.EntityType, id, actorID, reason string) (*models.TransitionResult, error)
	ListPending(ctx context.Context, q models.PendingQuery) (*models.PendingPage, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// Handler wires moderation endpoints to the workflow.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts moderation endpoints on an already-authorized router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/approve", h.HandleApprove)
	r.Post("/reject", h.HandleReject)
	r.Get("/pending", h.HandlePending)
	r.Get("/stats", h.HandleStats)
}

// HandleApprove handles POST /approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	actorID := requestcontext.ActorID(ctx)
	if actorID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[ApproveRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Approve(ctx, req.parsedType, req.ItemID, actorID)
	if err != nil {
		h.logFailure(ctx, "approve failed", requestID, req.parsedType, req.ItemID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "approve handled",
		"request_id", requestID,
		"actor_id", actorID,
		"item_type", req.parsedType,
		"item_id", req.ItemID,
		"changed", result.Changed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleReject handles POST /reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	actorID := requestcontext.ActorID(ctx)
	if actorID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[RejectRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Reject(ctx, req.parsedType, req.ItemID, actorID, req.Reason)
	if err != nil {
		h.logFailure(ctx, "reject failed", requestID, req.parsedType, req.ItemID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "reject handled",
		"request_id", requestID,
		"actor_id", actorID,
		"item_type", req.parsedType,
		"item_id", req.ItemID,
		"changed", result.Changed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandlePending handles GET /pending?type&page&limit.
func (h *Handler) HandlePending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var query models.PendingQuery
	if raw := q.Get("type"); raw != "" {
		t, err := models.ParseEntityType(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		query.Type = &t
	}
	page := pagination.Parse(q.Get("page"), q.Get("limit"))
	query.Page, query.Limit = page.Page, page.Limit

	result, err := h.service.ListPending(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "list pending failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	httputil.WriteJSON(w, http.StatusOK, toPendingResponse(result))
}

// HandleStats handles GET /stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "stats failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) logFailure(ctx context.Context, msg, requestID string, t models.EntityType, id string, err error) {
	level := slog.LevelWarn
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestID,
		"item_type", t,
		"item_id", id,
		"error", err,
	)
}
