package admin

import (
	"log/slog"
	"net/http"

	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/platform/httputil"
	"localdir/pkg/requestcontext"
)

// RequireRole lets through only actors whose role claim matches role.
// Must run after auth.RequireAuth.
func RequireRole(role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			actorID := requestcontext.ActorID(ctx)
			if actorID == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
				return
			}
			if requestcontext.ActorRole(ctx) != role {
				logger.WarnContext(ctx, "admin role required",
					"request_id", requestcontext.RequestID(ctx),
					"actor_id", actorID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
