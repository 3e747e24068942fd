// Package blog manages editorial posts.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/cache"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error)
	List(ctx context.Context, f domain.PostFilter) ([]*domain.BlogPost, int, error)
	Create(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const keyPost = "post:"

// PostPage is one page of a post listing.
type PostPage struct {
	Posts []*domain.BlogPost
	Total int
}

// Service provides blog operations.
type Service struct {
	posts postRepo
	audit auditRecorder
	tx    txManager

	store     *cache.TTLCache
	postCache cache.Typed[*domain.BlogPost]

	now func() time.Time
	log *slog.Logger
}

// NewService creates a blog service. Published posts are cached by slug
// for ttl.
func NewService(log *slog.Logger, posts postRepo, audit auditRecorder, tx txManager, store *cache.TTLCache, ttl time.Duration) *Service {
	return &Service{
		posts:     posts,
		audit:     audit,
		tx:        tx,
		store:     store,
		postCache: cache.NewTyped[*domain.BlogPost](store, ttl),
		now:       time.Now,
		log:       log.With("service", "blog"),
	}
}

// GetPostBySlug returns a live post. Callers other than admins only see
// published posts, and only those are cached.
func (s *Service) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	if ctxutil.IsAdminCtx(ctx) {
		p, err := s.posts.GetBySlug(ctx, slug, false)
		if err != nil {
			return nil, fmt.Errorf("get post: %w", err)
		}
		return p, nil
	}

	return s.postCache.GetOrLoad(keyPost+slug, func() (*domain.BlogPost, error) {
		p, err := s.posts.GetBySlug(ctx, slug, true)
		if err != nil {
			return nil, fmt.Errorf("get post: %w", err)
		}
		return p, nil
	})
}

// ListPosts returns one page of live posts, newest first. Callers other
// than admins only see published posts.
func (s *Service) ListPosts(ctx context.Context, f domain.PostFilter) (*PostPage, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		f.PublishedOnly = true
	}
	f.Limit = domain.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)

	posts, total, err := s.posts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &PostPage{Posts: posts, Total: total}, nil
}

// CreatePost adds a post authored by the calling admin.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.BlogPost, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Title)
	}

	var created *domain.BlogPost
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		post := &domain.BlogPost{
			ID:          uuid.New(),
			Title:       strings.TrimSpace(input.Title),
			Slug:        slug,
			Excerpt:     trimOrNil(input.Excerpt),
			Content:     input.Content,
			CoverURL:    trimOrNil(input.CoverURL),
			AuthorID:    &adminID,
			IsPublished: input.IsPublished,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if post.IsPublished {
			post.PublishedAt = &now
		}

		p, err := s.posts.Create(txCtx, post)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "slug already in use")
			}
			return fmt.Errorf("create post: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionBlogPostCreated,
			EntityType:  domain.EntityTypeBlogPost,
			EntityID:    &p.ID,
			After:       snapshot(p),
			Description: fmt.Sprintf("created post %q", p.Title),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("admin_id", adminID.String()),
		slog.String("post_id", created.ID.String()),
	)
	return created, nil
}

// UpdatePost changes the given fields of a live post. PublishedAt is set the
// first time a post is published and kept when it is unpublished.
func (s *Service) UpdatePost(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*domain.BlogPost, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.BlogPost
		oldSlug string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.posts.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		oldSlug = current.Slug
		before := snapshot(current)

		next := *current
		if input.Title != nil {
			next.Title = strings.TrimSpace(*input.Title)
		}
		if input.Slug != nil {
			next.Slug = *input.Slug
		}
		if input.Excerpt != nil {
			next.Excerpt = trimOrNil(input.Excerpt)
		}
		if input.Content != nil {
			next.Content = *input.Content
		}
		if input.CoverURL != nil {
			next.CoverURL = trimOrNil(input.CoverURL)
		}
		next.UpdatedAt = s.now().UTC()
		if input.IsPublished != nil {
			next.IsPublished = *input.IsPublished
			if next.IsPublished && next.PublishedAt == nil {
				publishedAt := next.UpdatedAt
				next.PublishedAt = &publishedAt
			}
		}

		p, err := s.posts.Update(txCtx, &next)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "slug already in use")
			}
			return fmt.Errorf("update post: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionBlogPostUpdated,
			EntityType:  domain.EntityTypeBlogPost,
			EntityID:    &p.ID,
			Before:      before,
			After:       snapshot(p),
			Description: fmt.Sprintf("updated post %q", p.Title),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Clear(keyPost + oldSlug)
	s.store.Clear(keyPost + updated.Slug)
	s.log.InfoContext(ctx, "post updated",
		slog.String("admin_id", adminID.String()),
		slog.String("post_id", id.String()),
	)
	return updated, nil
}

// DeletePost soft-deletes a post.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	var slug string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.posts.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		slug = p.Slug

		if err := s.posts.SoftDelete(txCtx, id, s.now().UTC()); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionBlogPostDeleted,
			EntityType:  domain.EntityTypeBlogPost,
			EntityID:    &id,
			Before:      snapshot(p),
			Description: fmt.Sprintf("deleted post %q", p.Title),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Clear(keyPost + slug)
	s.log.InfoContext(ctx, "post deleted",
		slog.String("admin_id", adminID.String()),
		slog.String("post_id", id.String()),
	)
	return nil
}

func snapshot(p *domain.BlogPost) map[string]any {
	m := map[string]any{
		"title":        p.Title,
		"slug":         p.Slug,
		"is_published": p.IsPublished,
	}
	if p.Excerpt != nil {
		m["excerpt"] = *p.Excerpt
	}
	if p.CoverURL != nil {
		m["cover_url"] = *p.CoverURL
	}
	return m
}
