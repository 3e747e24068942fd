// Package submission implements the Submission repository using PostgreSQL.
//
// Review decisions go through Transition, a conditional UPDATE that only
// matches rows whose current status is in the allowed set. Under Read
// Committed, concurrent transitions of the same row serialise on the row
// lock and the loser re-evaluates the predicate against the committed
// status, so at most one decision wins.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const table = "submissions"

var columns = []string{
	"id", "name", "url", "description", "logo_url", "category_id",
	"submitted_by", "email", "email_verified", "status", "feedback",
	"rejection_reason", "tool_id", "reviewed_by", "reviewed_at",
	"rejected_by", "rejected_at", "deleted_at", "created_at", "updated_at",
}

type row struct {
	ID              uuid.UUID  `db:"id"`
	Name            string     `db:"name"`
	URL             string     `db:"url"`
	Description     string     `db:"description"`
	LogoURL         *string    `db:"logo_url"`
	CategoryID      uuid.UUID  `db:"category_id"`
	SubmittedBy     *uuid.UUID `db:"submitted_by"`
	Email           *string    `db:"email"`
	EmailVerified   bool       `db:"email_verified"`
	Status          string     `db:"status"`
	Feedback        []string   `db:"feedback"`
	RejectionReason *string    `db:"rejection_reason"`
	ToolID          *uuid.UUID `db:"tool_id"`
	ReviewedBy      *uuid.UUID `db:"reviewed_by"`
	ReviewedAt      *time.Time `db:"reviewed_at"`
	RejectedBy      *uuid.UUID `db:"rejected_by"`
	RejectedAt      *time.Time `db:"rejected_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Submission {
	return &domain.Submission{
		ID:              r.ID,
		Name:            r.Name,
		URL:             r.URL,
		Description:     r.Description,
		LogoURL:         r.LogoURL,
		CategoryID:      r.CategoryID,
		SubmittedBy:     r.SubmittedBy,
		Email:           r.Email,
		EmailVerified:   r.EmailVerified,
		Status:          domain.SubmissionStatus(r.Status),
		Feedback:        r.Feedback,
		RejectionReason: r.RejectionReason,
		ToolID:          r.ToolID,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectedBy:      r.RejectedBy,
		RejectedAt:      r.RejectedAt,
		DeletedAt:       r.DeletedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) live() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table).Where(postgres.NotDeleted(""))
}

// GetByID returns a live submission.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	var out row
	err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, r.live().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	return out.toDomain(), nil
}

// List returns live submissions matching f, oldest first, and the total count.
func (r *Repo) List(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{postgres.NotDeleted("")}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}

	total, err := postgres.Count(ctx, querier, postgres.Builder.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "submission", "count")
	}

	q := postgres.Builder.Select(columns...).From(table).Where(where).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(domain.ClampLimit(f.Limit))).
		Offset(uint64(max(f.Offset, 0)))

	var rows []row
	if err := postgres.SelectAll(ctx, querier, &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "submission", "list")
	}

	out := make([]*domain.Submission, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, total, nil
}

// Create inserts a new submission.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	q := postgres.Builder.Insert(table).
		Columns("id", "name", "url", "description", "logo_url", "category_id",
			"submitted_by", "email", "email_verified", "status", "created_at", "updated_at").
		Values(s.ID, s.Name, s.URL, s.Description, s.LogoURL, s.CategoryID,
			s.SubmittedBy, s.Email, s.EmailVerified, string(s.Status), s.CreatedAt, s.UpdatedAt).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "submission", s.ID)
	}
	return out.toDomain(), nil
}

// transitionSQL is a compare-and-set on status. The self-join exposes the
// pre-update row for the audit trail; on a concurrent update the predicate
// is re-evaluated against the committed status, so the loser matches nothing.
var transitionSQL = `
UPDATE submissions AS s SET
    status           = $3,
    updated_at       = $4,
    tool_id          = COALESCE($5, s.tool_id),
    reviewed_by      = COALESCE($6, s.reviewed_by),
    reviewed_at      = CASE WHEN $6::uuid IS NULL THEN s.reviewed_at ELSE $4 END,
    rejected_by      = COALESCE($7, s.rejected_by),
    rejected_at      = CASE WHEN $7::uuid IS NULL THEN s.rejected_at ELSE $4 END,
    rejection_reason = COALESCE($8, s.rejection_reason),
    feedback         = COALESCE($9, s.feedback)
FROM submissions AS old
WHERE old.id = s.id
  AND s.id = $1
  AND s.status = ANY($2)
  AND s.deleted_at IS NULL
RETURNING ` + prefixed("old", columns) + ", " + prefixed("s", columns)

// Transition moves a live submission to t.To if and only if its current
// status is one of from. On success it returns the row as it was before the
// update and as it is after.
//
// When no row matches, the submission is re-read: an absent or deleted row
// yields domain.ErrNotFound; a row in any other status yields a
// *domain.ConflictError with reason INVALID_TRANSITION.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, from []domain.SubmissionStatus, t domain.SubmissionTransition) (before, after *domain.Submission, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	var oldRow, newRow row
	err = querier.QueryRow(ctx, transitionSQL,
		id, allowed, string(t.To), t.At,
		t.ToolID, t.ReviewedBy, t.RejectedBy, t.RejectionReason, t.Feedback,
	).Scan(append(oldRow.targets(), newRow.targets()...)...)
	if err == nil {
		return oldRow.toDomain(), newRow.toDomain(), nil
	}

	mapped := postgres.MapError(err, "submission", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, nil, mapped
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, nil, getErr
	}
	return nil, nil, fmt.Errorf("submission %s: %w", id, domain.NewConflictError(
		domain.ConflictInvalidTransition, 0,
		fmt.Sprintf("cannot move submission from %s to %s", current.Status, t.To),
	))
}

// SoftDelete stamps deleted_at and updated_at. Returns domain.ErrNotFound if
// the submission is absent or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.Builder.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if n == 0 {
		return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByStatus counts live submissions in the given status.
func (r *Repo) CountByStatus(ctx context.Context, status domain.SubmissionStatus) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"status": string(status)}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "submission", "count")
	}
	return n, nil
}

func (r *row) targets() []any {
	return []any{
		&r.ID, &r.Name, &r.URL, &r.Description, &r.LogoURL, &r.CategoryID,
		&r.SubmittedBy, &r.Email, &r.EmailVerified, &r.Status, &r.Feedback,
		&r.RejectionReason, &r.ToolID, &r.ReviewedBy, &r.ReviewedAt,
		&r.RejectedBy, &r.RejectedAt, &r.DeletedAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

func prefixed(alias string, cols []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return strings.Join(out, ", ")
}
