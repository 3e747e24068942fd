package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

// Approve publishes a pending submission as a new tool.
//
// The status change, tool insert and audit records commit together. The
// status change is a compare-and-set, so of several concurrent approvals
// exactly one succeeds and the rest fail with an INVALID_TRANSITION
// conflict. The submitter is emailed after commit; delivery failures are
// not reported to the caller.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, input ApproveInput) (*ApproveResult, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))

	var result ApproveResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		toolID := uuid.New()

		before, after, err := s.submissions.Transition(txCtx, id, domain.ReviewableStatuses, domain.SubmissionTransition{
			To:         domain.SubmissionStatusApproved,
			At:         now,
			ToolID:     &toolID,
			ReviewedBy: &adminID,
		})
		if err != nil {
			return fmt.Errorf("approve submission: %w", err)
		}

		// Held until commit so the category cannot be deleted under the new tool.
		if _, err := s.categories.ShareLockByID(txCtx, after.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("category_id", "submission category no longer exists")
			}
			return fmt.Errorf("get category: %w", err)
		}

		tool, err := s.tools.Create(txCtx, &domain.Tool{
			ID:           toolID,
			Name:         after.Name,
			URL:          after.URL,
			Description:  after.Description,
			LogoURL:      after.LogoURL,
			CategoryID:   after.CategoryID,
			IsPublished:  input.IsPublished,
			IsFeatured:   input.IsFeatured,
			SubmissionID: &after.ID,
			SubmittedBy:  after.SubmittedBy,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "a live tool already uses this URL")
			}
			return fmt.Errorf("create tool: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   role,
			Action:      domain.AuditActionSubmissionApproved,
			EntityType:  domain.EntityTypeSubmission,
			EntityID:    &after.ID,
			Before:      snapshot(before),
			After:       snapshot(after),
			Description: fmt.Sprintf("approved submission %q", after.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   role,
			Action:      domain.AuditActionToolCreated,
			EntityType:  domain.EntityTypeTool,
			EntityID:    &tool.ID,
			After:       map[string]any{"name": tool.Name, "url": tool.URL, "submission_id": after.ID.String()},
			Description: "created from submission",
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		result = ApproveResult{Tool: tool, Submission: after}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Clear("tools:")
	s.metrics.IncrementDecision(string(domain.SubmissionStatusApproved))

	s.log.InfoContext(ctx, "submission approved",
		slog.String("admin_id", adminID.String()),
		slog.String("submission_id", result.Submission.ID.String()),
		slog.String("tool_id", result.Tool.ID.String()),
	)

	if email := result.Submission.ContactEmail(); email != "" {
		s.notifier.SendApprovalEmail(email, result.Submission.Name, s.toolURL(result.Tool.ID))
	}

	return &result, nil
}

// Reject declines a pending submission. A second rejection of the same
// submission fails with an INVALID_TRANSITION conflict.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, input RejectInput) (*domain.Submission, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(input.Reason)

	after, err := s.decide(ctx, id, adminID, domain.SubmissionTransition{
		To:              domain.SubmissionStatusRejected,
		ReviewedBy:      &adminID,
		RejectedBy:      &adminID,
		RejectionReason: &reason,
	}, domain.AuditActionSubmissionRejected, "rejected submission")
	if err != nil {
		return nil, err
	}

	if email := after.ContactEmail(); email != "" {
		s.notifier.SendRejectionEmail(email, after.Name, reason)
	}
	return after, nil
}

// RequestChanges sends a pending submission back to its author with
// feedback. Rejection fields are left untouched.
func (s *Service) RequestChanges(ctx context.Context, id uuid.UUID, input RequestChangesInput) (*domain.Submission, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.decide(ctx, id, adminID, domain.SubmissionTransition{
		To:         domain.SubmissionStatusChangesRequested,
		ReviewedBy: &adminID,
		Feedback:   input.normalized(),
	}, domain.AuditActionSubmissionChangesRequested, "requested changes")
}

// decide applies a decision that creates no other entity: the transition
// and its audit record commit together.
func (s *Service) decide(
	ctx context.Context,
	id, adminID uuid.UUID,
	t domain.SubmissionTransition,
	action domain.AuditAction,
	verb string,
) (*domain.Submission, error) {
	var after *domain.Submission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t.At = s.now().UTC()

		before, updated, err := s.submissions.Transition(txCtx, id, domain.ReviewableStatuses, t)
		if err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      action,
			EntityType:  domain.EntityTypeSubmission,
			EntityID:    &updated.ID,
			Before:      snapshot(before),
			After:       snapshot(updated),
			Description: fmt.Sprintf("%s %q", verb, updated.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		after = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementDecision(string(t.To))
	s.log.InfoContext(ctx, "submission reviewed",
		slog.String("admin_id", adminID.String()),
		slog.String("submission_id", after.ID.String()),
		slog.String("status", string(after.Status)),
	)
	return after, nil
}
