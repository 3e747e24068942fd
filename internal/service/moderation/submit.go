package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

// Submit records a new pending submission. Signed-in callers are recorded
// as the submitter; anonymous callers must leave a contact email.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Submission, error) {
	userID, signedIn := ctxutil.UserIDFromCtx(ctx)

	if err := input.Validate(!signedIn); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("category_id", "unknown category")
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	now := s.now().UTC()
	sub := &domain.Submission{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		URL:         domain.NormalizeURL(input.URL),
		Description: strings.TrimSpace(input.Description),
		LogoURL:     trimOrNil(input.LogoURL),
		CategoryID:  input.CategoryID,
		Status:      domain.SubmissionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if signedIn {
		sub.SubmittedBy = &userID
	} else {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		sub.Email = &email
	}

	created, err := s.submissions.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.InfoContext(ctx, "submission received",
		slog.String("submission_id", created.ID.String()),
		slog.Bool("guest", !signedIn),
	)

	return created, nil
}
