// Package moderation owns the submission lifecycle: public intake and the
// admin review decisions that approve, reject or send a submission back for
// changes.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/integrity"
)

type submissionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	List(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error)
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	Transition(ctx context.Context, id uuid.UUID, from []domain.SubmissionStatus, t domain.SubmissionTransition) (*domain.Submission, *domain.Submission, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type toolRepo interface {
	Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ShareLockByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type deletionGuard interface {
	CanDeleteSubmission(ctx context.Context, id uuid.UUID) (integrity.Decision, error)
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	SendApprovalEmail(email, name, toolURL string)
	SendRejectionEmail(email, name, reason string)
}

type cacheInvalidator interface {
	Clear(pattern string) int
}

type decisionRecorder interface {
	IncrementDecision(status string)
}

// Service implements submission intake and review.
type Service struct {
	submissions submissionRepo
	tools       toolRepo
	categories  categoryRepo
	guard       deletionGuard
	audit       auditRecorder
	tx          txManager
	notifier    notifier
	cache       cacheInvalidator
	metrics     decisionRecorder
	toolURL     func(id uuid.UUID) string
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a moderation service. toolURL builds the public link
// sent to submitters on approval.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	tools toolRepo,
	categories categoryRepo,
	guard deletionGuard,
	audit auditRecorder,
	tx txManager,
	notifier notifier,
	cache cacheInvalidator,
	metrics decisionRecorder,
	toolURL func(id uuid.UUID) string,
) *Service {
	return &Service{
		submissions: submissions,
		tools:       tools,
		categories:  categories,
		guard:       guard,
		audit:       audit,
		tx:          tx,
		notifier:    notifier,
		cache:       cache,
		metrics:     metrics,
		toolURL:     toolURL,
		now:         time.Now,
		log:         log.With("service", "moderation"),
	}
}

// ApproveResult is the outcome of an approval: the created tool and the
// submission in its approved state.
type ApproveResult struct {
	Tool       *domain.Tool
	Submission *domain.Submission
}

// snapshot captures the review-relevant fields of a submission for the
// audit trail.
func snapshot(s *domain.Submission) map[string]any {
	m := map[string]any{"status": string(s.Status)}
	if s.ToolID != nil {
		m["tool_id"] = s.ToolID.String()
	}
	if s.ReviewedBy != nil {
		m["reviewed_by"] = s.ReviewedBy.String()
	}
	if s.RejectionReason != nil {
		m["rejection_reason"] = *s.RejectionReason
	}
	if len(s.Feedback) > 0 {
		m["feedback"] = s.Feedback
	}
	return m
}
