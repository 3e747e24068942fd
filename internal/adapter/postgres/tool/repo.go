// Package tool implements the Tool repository using PostgreSQL.
package tool

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const table = "tools"

var columns = []string{
	"id", "name", "url", "description", "logo_url", "category_id",
	"is_published", "is_featured", "submission_id", "submitted_by",
	"view_count", "click_count", "deleted_at", "created_at", "updated_at",
}

// sortColumns maps public sort keys to ORDER BY clauses.
var sortColumns = map[string]string{
	"newest":  "created_at DESC",
	"name":    "name ASC",
	"popular": "view_count DESC",
	"clicks":  "click_count DESC",
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	URL          string     `db:"url"`
	Description  string     `db:"description"`
	LogoURL      *string    `db:"logo_url"`
	CategoryID   uuid.UUID  `db:"category_id"`
	IsPublished  bool       `db:"is_published"`
	IsFeatured   bool       `db:"is_featured"`
	SubmissionID *uuid.UUID `db:"submission_id"`
	SubmittedBy  *uuid.UUID `db:"submitted_by"`
	ViewCount    int64      `db:"view_count"`
	ClickCount   int64      `db:"click_count"`
	DeletedAt    *time.Time `db:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Tool {
	return &domain.Tool{
		ID:           r.ID,
		Name:         r.Name,
		URL:          r.URL,
		Description:  r.Description,
		LogoURL:      r.LogoURL,
		CategoryID:   r.CategoryID,
		IsPublished:  r.IsPublished,
		IsFeatured:   r.IsFeatured,
		SubmissionID: r.SubmissionID,
		SubmittedBy:  r.SubmittedBy,
		ViewCount:    r.ViewCount,
		ClickCount:   r.ClickCount,
		DeletedAt:    r.DeletedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides tool persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tool repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a live tool.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(postgres.NotDeleted("")).
		Where(sq.Eq{"id": id})

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "tool", id)
	}
	return out.toDomain(), nil
}

func applyFilter(b sq.SelectBuilder, f domain.ToolFilter) sq.SelectBuilder {
	b = b.Where(postgres.NotDeleted(""))
	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		b = b.Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}})
	}
	if f.FeaturedOnly {
		b = b.Where(sq.Eq{"is_featured": true})
	}
	if f.PublishedOnly {
		b = b.Where(sq.Eq{"is_published": true})
	}
	return b
}

// List returns live tools matching f and the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.ToolFilter) ([]*domain.Tool, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, querier, applyFilter(postgres.Builder.Select("count(*)").From(table), f))
	if err != nil {
		return nil, 0, postgres.MapError(err, "tool", "count")
	}

	order, ok := sortColumns[f.SortBy]
	if !ok {
		order = sortColumns["newest"]
	}
	q := applyFilter(postgres.Builder.Select(columns...).From(table), f).
		OrderBy(order, "id ASC").
		Limit(uint64(domain.ClampLimit(f.Limit))).
		Offset(uint64(max(f.Offset, 0)))

	var rows []row
	if err := postgres.SelectAll(ctx, querier, &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "tool", "list")
	}

	tools := make([]*domain.Tool, len(rows))
	for i, rw := range rows {
		tools[i] = rw.toDomain()
	}
	return tools, total, nil
}

// Create inserts a tool. A live tool with the same URL, or a second tool for
// the same submission, yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	q := postgres.Builder.Insert(table).
		Columns("id", "name", "url", "description", "logo_url", "category_id",
			"is_published", "is_featured", "submission_id", "submitted_by", "created_at", "updated_at").
		Values(t.ID, t.Name, t.URL, t.Description, t.LogoURL, t.CategoryID,
			t.IsPublished, t.IsFeatured, t.SubmissionID, t.SubmittedBy, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "tool", t.ID)
	}
	return out.toDomain(), nil
}

// Update overwrites the editable columns of a live tool. Counters and
// provenance are never touched.
func (r *Repo) Update(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	q := postgres.Builder.Update(table).
		Set("name", t.Name).
		Set("url", t.URL).
		Set("description", t.Description).
		Set("logo_url", t.LogoURL).
		Set("category_id", t.CategoryID).
		Set("is_published", t.IsPublished).
		Set("is_featured", t.IsFeatured).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID}).
		Where(postgres.NotDeleted("")).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "tool", t.ID)
	}
	return out.toDomain(), nil
}

// SoftDelete stamps deleted_at and updated_at. Returns domain.ErrNotFound if
// the tool is absent or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.Builder.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "tool", id)
	}
	if n == 0 {
		return fmt.Errorf("tool %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountLiveByCategory counts live tools referencing categoryID.
func (r *Repo) CountLiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"category_id": categoryID}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "tool", categoryID)
	}
	return n, nil
}

// CountLive counts all live tools.
func (r *Repo) CountLive(ctx context.Context) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).Where(postgres.NotDeleted(""))

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "tool", "count")
	}
	return n, nil
}

// IncrementViews atomically bumps view_count of a live tool.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.increment(ctx, id, "view_count")
}

// IncrementClicks atomically bumps click_count of a live tool.
func (r *Repo) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	return r.increment(ctx, id, "click_count")
}

// increment does not touch updated_at: counters are not edits.
func (r *Repo) increment(ctx context.Context, id uuid.UUID, column string) error {
	q := postgres.Builder.Update(table).
		Set(column, sq.Expr(column+" + 1")).
		Where(sq.Eq{"id": id}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "tool", id)
	}
	if n == 0 {
		return fmt.Errorf("tool %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
