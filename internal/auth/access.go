package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

// RequireAdmin returns the acting admin's ID. It fails with
// domain.ErrUnauthorized when ctx carries no identity and with
// domain.ErrForbidden when the identity is not an admin.
func RequireAdmin(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.UserRoleFromCtx(ctx)).IsAdmin() {
		return uuid.Nil, domain.ErrForbidden
	}
	return id, nil
}
