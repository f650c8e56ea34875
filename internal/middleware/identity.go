package middleware

import (
	"context"
	"net/http"
	"strings"

	"taskflow/internal/common/logging"
)

// DefaultUserIDHeader is the header the gateway sets after authenticating
const DefaultUserIDHeader = "X-User-Id"

// IdentityMiddleware copies the caller id set by the gateway into the
// request context. The value is trusted as is; requests without it carry
// an empty id and are rejected by the operations that need one.
func IdentityMiddleware(header string) func(http.Handler) http.Handler {
	if header == "" {
		header = DefaultUserIDHeader
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := strings.TrimSpace(r.Header.Get(header)); userID != "" {
				r = r.WithContext(WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUserID returns a context carrying userID
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, logging.UserIDKey, userID)
}

// UserID returns the caller id, or "" when the request had none
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(logging.UserIDKey).(string)
	return id
}
