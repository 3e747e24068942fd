// Package blog implements the BlogPost repository using PostgreSQL.
package blog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const table = "blog_posts"

var columns = []string{
	"id", "title", "slug", "excerpt", "content", "cover_url", "author_id",
	"is_published", "published_at", "deleted_at", "created_at", "updated_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     *string    `db:"excerpt"`
	Content     string     `db:"content"`
	CoverURL    *string    `db:"cover_url"`
	AuthorID    *uuid.UUID `db:"author_id"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		CoverURL:    r.CoverURL,
		AuthorID:    r.AuthorID,
		IsPublished: r.IsPublished,
		PublishedAt: r.PublishedAt,
		DeletedAt:   r.DeletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides blog post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new blog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) get(ctx context.Context, where sq.Sqlizer, ref any) (*domain.BlogPost, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(postgres.NotDeleted("")).Where(where)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "blog_post", ref)
	}
	return out.toDomain(), nil
}

// GetByID returns a live post regardless of publication state.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetBySlug returns a live post. When publishedOnly is set, drafts are
// reported as not found.
func (r *Repo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	where := sq.And{sq.Eq{"slug": slug}}
	if publishedOnly {
		where = append(where, sq.Eq{"is_published": true})
	}
	return r.get(ctx, where, slug)
}

// List returns live posts, newest publication first, and the total count.
func (r *Repo) List(ctx context.Context, f domain.PostFilter) ([]*domain.BlogPost, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{postgres.NotDeleted("")}
	if f.PublishedOnly {
		where = append(where, sq.Eq{"is_published": true})
	}

	total, err := postgres.Count(ctx, querier, postgres.Builder.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "blog_post", "count")
	}

	q := postgres.Builder.Select(columns...).From(table).Where(where).
		OrderBy("published_at DESC NULLS LAST", "created_at DESC").
		Limit(uint64(domain.ClampLimit(f.Limit))).
		Offset(uint64(max(f.Offset, 0)))

	var rows []row
	if err := postgres.SelectAll(ctx, querier, &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "blog_post", "list")
	}

	posts := make([]*domain.BlogPost, len(rows))
	for i, rw := range rows {
		posts[i] = rw.toDomain()
	}
	return posts, total, nil
}

// Create inserts a post.
func (r *Repo) Create(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	q := postgres.Builder.Insert(table).
		Columns("id", "title", "slug", "excerpt", "content", "cover_url", "author_id",
			"is_published", "published_at", "created_at", "updated_at").
		Values(p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.CoverURL, p.AuthorID,
			p.IsPublished, p.PublishedAt, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "blog_post", p.ID)
	}
	return out.toDomain(), nil
}

// Update overwrites the editable columns of a live post.
func (r *Repo) Update(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	q := postgres.Builder.Update(table).
		Set("title", p.Title).
		Set("slug", p.Slug).
		Set("excerpt", p.Excerpt).
		Set("content", p.Content).
		Set("cover_url", p.CoverURL).
		Set("is_published", p.IsPublished).
		Set("published_at", p.PublishedAt).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		Where(postgres.NotDeleted("")).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "blog_post", p.ID)
	}
	return out.toDomain(), nil
}

// SoftDelete stamps deleted_at and updated_at.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.Builder.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Where(postgres.NotDeleted(""))

	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "blog_post", id)
	}
	if n == 0 {
		return fmt.Errorf("blog_post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountPublished counts live published posts.
func (r *Repo) CountPublished(ctx context.Context) (int, error) {
	q := postgres.Builder.Select("count(*)").From(table).
		Where(postgres.NotDeleted("")).
		Where(sq.Eq{"is_published": true})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "blog_post", "count")
	}
	return n, nil
}
