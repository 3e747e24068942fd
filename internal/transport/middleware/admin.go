package middleware

import (
	"net/http"

	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

// RequireAdmin rejects anonymous callers with 401 and non-admin callers
// with 403. Services check the role again; this keeps unauthenticated
// traffic away from admin handlers.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
