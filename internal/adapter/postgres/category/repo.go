// Package category implements the Category repository using PostgreSQL.
// Deletion is soft: rows are stamped with deleted_at and every read filters
// them out.
package category

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const table = "categories"

var columns = []string{
	"id", "name", "slug", "description", "icon", "parent_id",
	"display_order", "deleted_at", "created_at", "updated_at",
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	Slug         string     `db:"slug"`
	Description  *string    `db:"description"`
	Icon         *string    `db:"icon"`
	ParentID     *uuid.UUID `db:"parent_id"`
	DisplayOrder int        `db:"display_order"`
	DeletedAt    *time.Time `db:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Category {
	return &domain.Category{
		ID:           r.ID,
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		Icon:         r.Icon,
		ParentID:     r.ParentID,
		DisplayOrder: r.DisplayOrder,
		DeletedAt:    r.DeletedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) live() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table).Where(postgres.NotDeleted(""))
}

// GetByID returns a live category.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var out row
	err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, r.live().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return out.toDomain(), nil
}

// LockByID returns a live category and holds an exclusive row lock on it
// until the enclosing transaction ends. Readers taking ShareLockByID wait for
// that lock, so child counts taken afterwards stay accurate until commit.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var out row
	err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		r.live().Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return out.toDomain(), nil
}

// ShareLockByID returns a live category and holds a key-share lock on it
// until the enclosing transaction ends. Call it inside a transaction before
// inserting a row that references the category. If a delete holds the row,
// the read waits and then re-checks deleted_at against the committed version,
// returning ErrNotFound when the category is gone.
func (r *Repo) ShareLockByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var out row
	err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		r.live().Where(sq.Eq{"id": id}).Suffix("FOR KEY SHARE"))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return out.toDomain(), nil
}

// GetBySlug returns a live category by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var out row
	err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, r.live().Where(sq.Eq{"slug": slug}))
	if err != nil {
		return nil, postgres.MapError(err, "category", slug)
	}
	return out.toDomain(), nil
}

// GetByIDs returns the live categories among ids, in no particular order
// (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}

	var rows []row
	err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, r.live().Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, postgres.MapError(err, "category", fmt.Sprintf("batch of %d", len(ids)))
	}
	return toDomainSlice(rows), nil
}

// List returns all live categories ordered by display order then name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	var rows []row
	err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		r.live().OrderBy("display_order ASC", "name ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "category", "list")
	}
	return toDomainSlice(rows), nil
}

// Create inserts a category and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.Builder.Insert(table).
		Columns("id", "name", "slug", "description", "icon", "parent_id", "display_order", "created_at", "updated_at").
		Values(c.ID, c.Name, c.Slug, c.Description, c.Icon, c.ParentID, c.DisplayOrder, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}
	return out.toDomain(), nil
}

// Update overwrites the mutable columns of a live category.
func (r *Repo) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.Builder.Update(table).
		Set("name", c.Name).
		Set("slug", c.Slug).
		Set("description", c.Description).
		Set("icon", c.Icon).
		Set("parent_id", c.ParentID).
		Set("display_order", c.DisplayOrder).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		Where(postgres.NotDeleted("")).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}
	return out.toDomain(), nil
}

// SoftDelete stamps deleted_at and updated_at. Returns domain.ErrNotFound if
// the category is absent or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.Builder.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountLiveChildren counts live categories whose parent is id.
func (r *Repo) CountLiveChildren(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"parent_id": id}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "category", id)
	}
	return n, nil
}

// CountLive counts all live categories.
func (r *Repo) CountLive(ctx context.Context) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).Where(postgres.NotDeleted(""))

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "category", "count")
	}
	return n, nil
}

func toDomainSlice(rows []row) []*domain.Category {
	out := make([]*domain.Category, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}
