package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"localdir/internal/audit"
	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/platform/httputil"
	"localdir/pkg/requestcontext"
)

// Toggle is the runtime notification switch.
type Toggle interface {
	Enabled() bool
	SetEnabled(enabled bool) bool
}

// ConfigAuditor records settings changes.
type ConfigAuditor interface {
	LogConfigChange(ctx context.Context, action, detail string) *audit.Entry
}

// Handler lets administrators pause and resume outgoing moderation mail.
type Handler struct {
	toggle  Toggle
	auditor ConfigAuditor
	logger  *slog.Logger
}

func New(toggle Toggle, auditor ConfigAuditor, logger *slog.Logger) *Handler {
	return &Handler{toggle: toggle, auditor: auditor, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/settings/notifications", h.HandleGet)
	r.Post("/settings/notifications", h.HandleUpdate)
}

// SettingsRequest is the body of POST /settings/notifications.
type SettingsRequest struct {
	Enabled *bool `json:"enabled"`
}

func (r *SettingsRequest) Validate() error {
	if r == nil || r.Enabled == nil {
		return dErrors.New(dErrors.CodeValidation, "enabled is required")
	}
	return nil
}

// SettingsResponse reports the current switch position.
type SettingsResponse struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, SettingsResponse{Enabled: h.toggle.Enabled()})
}

// HandleUpdate handles POST /settings/notifications. Only real changes are audited.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SettingsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	enabled := *req.Enabled
	if previous := h.toggle.SetEnabled(enabled); previous != enabled {
		detail := "notifications disabled"
		if enabled {
			detail = "notifications enabled"
		}
		h.auditor.LogConfigChange(ctx, audit.ActionUpdateNotificationSettings, detail)
		h.logger.InfoContext(ctx, detail,
			"request_id", requestID,
			"actor_id", requestcontext.ActorID(ctx),
		)
	}
	httputil.WriteJSON(w, http.StatusOK, SettingsResponse{Enabled: enabled})
}
