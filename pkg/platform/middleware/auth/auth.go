package auth

import (
	"log/slog"
	"net/http"
	"strings"

	dErrors "localdir/pkg/domain-errors"
	"localdir/pkg/platform/httputil"
	"localdir/pkg/requestcontext"
)

// TokenValidator verifies a bearer token issued by the identity provider.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims are the verified facts the middleware needs from a token.
type Claims struct {
	Subject string
	Role    string
}

// RequireAuth rejects requests without a valid bearer token and stores the
// actor id and role in the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(token))
			if err != nil || claims.Subject == "" {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestID,
					"error", err,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
				return
			}

			ctx = requestcontext.WithActor(ctx, claims.Subject, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
