package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localdir/internal/audit"
	auditmemory "localdir/internal/audit/store/memory"
	"localdir/internal/notification"
	"localdir/pkg/pagination"
	"localdir/pkg/testutil"
)

func TestSettingsToggle(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	toggle := notification.NewSwitch(notification.NewLogSender(logger))
	auditSvc := audit.NewService(auditmemory.NewInMemoryStore())

	r := chi.NewRouter()
	New(toggle, auditSvc, logger).Register(r)

	update := func(body any) int {
		req := testutil.AsActor(testutil.NewJSONRequest(t, http.MethodPost, "/settings/notifications", body), "admin-1", "admin")
		return testutil.Serve(r, req).Code
	}

	require.Equal(t, http.StatusOK, update(map[string]bool{"enabled": false}))
	assert.False(t, toggle.Enabled())

	// Unchanged value is not audited again.
	require.Equal(t, http.StatusOK, update(map[string]bool{"enabled": false}))
	assert.Equal(t, http.StatusBadRequest, update(map[string]string{}))

	rr := testutil.Serve(r, testutil.NewJSONRequest(t, http.MethodGet, "/settings/notifications", nil))
	assert.False(t, testutil.Decode[SettingsResponse](t, rr).Enabled)

	page, err := auditSvc.GetLogs(context.Background(), audit.Filter{Action: audit.ActionUpdateNotificationSettings}, pagination.New(1, 10))
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "admin-1", page.Entries[0].ActorID)
	assert.Equal(t, "notifications disabled", page.Entries[0].Detail)
}
