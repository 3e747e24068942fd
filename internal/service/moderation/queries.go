package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

// GetSubmission returns a live submission. Admin only.
func (s *Service) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

// ListSubmissions returns the review queue, oldest first, and its total
// size. Admin only.
func (s *Service) ListSubmissions(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "unknown status")
	}

	subs, total, err := s.submissions.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return subs, total, nil
}
