package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

// DeleteSubmission soft-deletes a submission in any status. A tool created
// from it stays listed.
func (s *Service) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sub, err := s.submissions.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}

		decision, err := s.guard.CanDeleteSubmission(txCtx, id)
		if err != nil {
			return fmt.Errorf("check submission delete: %w", err)
		}
		if err := decision.Err(); err != nil {
			return err
		}

		if err := s.submissions.SoftDelete(txCtx, id, s.now().UTC()); err != nil {
			return fmt.Errorf("delete submission: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionSubmissionDeleted,
			EntityType:  domain.EntityTypeSubmission,
			EntityID:    &id,
			Before:      snapshot(sub),
			Description: fmt.Sprintf("deleted submission %q", sub.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "submission deleted",
		slog.String("admin_id", adminID.String()),
		slog.String("submission_id", id.String()),
	)
	return nil
}
