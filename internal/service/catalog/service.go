// Package catalog manages categories and tools: admin CRUD, cached public
// reads and view/click counters.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/cache"
	"github.com/heartmarshall/tooldir-backend/internal/config"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/integrity"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ShareLockByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type toolRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	List(ctx context.Context, f domain.ToolFilter) ([]*domain.Tool, int, error)
	Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error)
	Update(ctx context.Context, t *domain.Tool) (*domain.Tool, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementClicks(ctx context.Context, id uuid.UUID) error
}

type deletionGuard interface {
	CanDeleteCategory(ctx context.Context, id uuid.UUID) (integrity.Decision, error)
	CanDeleteTool(ctx context.Context, id uuid.UUID) (integrity.Decision, error)
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache key prefixes. Invalidation clears by substring, so no prefix may
// contain another.
const (
	keyTool       = "tool:"
	keyToolList   = "tools:"
	keyCategory   = "category:"
	keyCategories = keyCategory + "list"
)

// ToolPage is one page of a tool listing.
type ToolPage struct {
	Tools []*domain.Tool
	Total int
}

// DeleteResult reports a completed soft delete.
type DeleteResult struct {
	ID      uuid.UUID
	Deleted bool
}

// Service provides catalog operations.
type Service struct {
	categories categoryRepo
	tools      toolRepo
	guard      deletionGuard
	audit      auditRecorder
	tx         txManager

	store        *cache.TTLCache
	toolCache    cache.Typed[*domain.Tool]
	listCache    cache.Typed[ToolPage]
	catCache     cache.Typed[*domain.Category]
	catListCache cache.Typed[[]*domain.Category]

	now func() time.Time
	log *slog.Logger
}

// NewService creates a catalog service backed by the shared read cache.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	tools toolRepo,
	guard deletionGuard,
	audit auditRecorder,
	tx txManager,
	store *cache.TTLCache,
	ttl config.CacheConfig,
) *Service {
	return &Service{
		categories:   categories,
		tools:        tools,
		guard:        guard,
		audit:        audit,
		tx:           tx,
		store:        store,
		toolCache:    cache.NewTyped[*domain.Tool](store, ttl.ToolTTL),
		listCache:    cache.NewTyped[ToolPage](store, ttl.ListTTL),
		catCache:     cache.NewTyped[*domain.Category](store, ttl.CategoryTTL),
		catListCache: cache.NewTyped[[]*domain.Category](store, ttl.CategoryTTL),
		now:          time.Now,
		log:          log.With("service", "catalog"),
	}
}

func (s *Service) invalidateTool(id uuid.UUID) {
	s.store.Clear(keyTool + id.String())
	s.store.Clear(keyToolList)
}

func categorySnapshot(c *domain.Category) map[string]any {
	m := map[string]any{
		"name":          c.Name,
		"slug":          c.Slug,
		"display_order": c.DisplayOrder,
	}
	if c.ParentID != nil {
		m["parent_id"] = c.ParentID.String()
	}
	if c.Icon != nil {
		m["icon"] = *c.Icon
	}
	if c.Description != nil {
		m["description"] = *c.Description
	}
	return m
}

func toolSnapshot(t *domain.Tool) map[string]any {
	m := map[string]any{
		"name":         t.Name,
		"url":          t.URL,
		"description":  t.Description,
		"category_id":  t.CategoryID.String(),
		"is_published": t.IsPublished,
		"is_featured":  t.IsFeatured,
	}
	if t.LogoURL != nil {
		m["logo_url"] = *t.LogoURL
	}
	return m
}
