package catalog

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

// maxCategoryDepth bounds the ancestor walk when checking for cycles.
const maxCategoryDepth = 32

// ListCategories returns all live categories ordered for display.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.catListCache.GetOrLoad(keyCategories, func() ([]*domain.Category, error) {
		cats, err := s.categories.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		return cats, nil
	})
}

// GetCategoryBySlug returns a live category by slug.
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}
	return s.catCache.GetOrLoad(keyCategory+"slug:"+slug, func() (*domain.Category, error) {
		c, err := s.categories.GetBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
		return c, nil
	})
}

// CreateCategory adds a category, optionally under an existing parent.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Name)
	}

	var created *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.ParentID != nil {
			if _, err := s.categories.ShareLockByID(txCtx, *input.ParentID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.NewValidationError("parent_id", "parent category not found")
				}
				return fmt.Errorf("get parent: %w", err)
			}
		}

		now := s.now().UTC()
		c, err := s.categories.Create(txCtx, &domain.Category{
			ID:           uuid.New(),
			Name:         strings.TrimSpace(input.Name),
			Slug:         slug,
			Description:  trimOrNil(input.Description),
			Icon:         trimOrNil(input.Icon),
			ParentID:     input.ParentID,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "slug already in use")
			}
			return fmt.Errorf("create category: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionCategoryCreated,
			EntityType:  domain.EntityTypeCategory,
			EntityID:    &c.ID,
			After:       categorySnapshot(c),
			Description: fmt.Sprintf("created category %q", c.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Clear(keyCategory)
	s.log.InfoContext(ctx, "category created",
		slog.String("admin_id", adminID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)
	return created, nil
}

// UpdateCategory changes the given fields of a live category. A category
// cannot become its own ancestor.
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*domain.Category, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		before := categorySnapshot(current)

		next := *current
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Slug != nil {
			next.Slug = *input.Slug
		}
		if input.Description != nil {
			next.Description = trimOrNil(input.Description)
		}
		if input.Icon != nil {
			next.Icon = trimOrNil(input.Icon)
		}
		if input.DisplayOrder != nil {
			next.DisplayOrder = *input.DisplayOrder
		}
		if input.ClearParent {
			next.ParentID = nil
		}
		if input.ParentID != nil {
			if err := s.checkParent(txCtx, id, *input.ParentID); err != nil {
				return err
			}
			next.ParentID = input.ParentID
		}
		next.UpdatedAt = s.now().UTC()

		c, err := s.categories.Update(txCtx, &next)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "slug already in use")
			}
			return fmt.Errorf("update category: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionCategoryUpdated,
			EntityType:  domain.EntityTypeCategory,
			EntityID:    &c.ID,
			Before:      before,
			After:       categorySnapshot(c),
			Description: fmt.Sprintf("updated category %q", c.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Clear(keyCategory)
	s.log.InfoContext(ctx, "category updated",
		slog.String("admin_id", adminID.String()),
		slog.String("category_id", id.String()),
	)
	return updated, nil
}

// checkParent verifies that parentID names a live category and that id is
// not among its ancestors.
func (s *Service) checkParent(ctx context.Context, id, parentID uuid.UUID) error {
	if parentID == id {
		return domain.NewValidationError("parent_id", "category cannot be its own parent")
	}
	cursor := &parentID
	for depth := 0; cursor != nil; depth++ {
		if depth >= maxCategoryDepth {
			return domain.NewValidationError("parent_id", "category tree too deep")
		}
		c, err := s.ancestor(ctx, *cursor, depth)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				if depth == 0 {
					return domain.NewValidationError("parent_id", "parent category not found")
				}
				return nil
			}
			return fmt.Errorf("get ancestor: %w", err)
		}
		if c.ParentID != nil && *c.ParentID == id {
			return domain.NewValidationError("parent_id", "would create a cycle")
		}
		cursor = c.ParentID
	}
	return nil
}

// ancestor reads one step of the parent chain. The direct parent is
// share-locked so it cannot be deleted before the move commits.
func (s *Service) ancestor(ctx context.Context, id uuid.UUID, depth int) (*domain.Category, error) {
	if depth == 0 {
		return s.categories.ShareLockByID(ctx, id)
	}
	return s.categories.GetByID(ctx, id)
}

// DeleteCategory soft-deletes a category that has no live tools and no live
// subcategories.
//
// The category row is locked before counting. Tool and subcategory writers
// share-lock the category first, so a racing insert either commits before
// the count and is counted, or waits and then finds the category deleted.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.categories.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock category: %w", err)
		}

		decision, err := s.guard.CanDeleteCategory(txCtx, id)
		if err != nil {
			return fmt.Errorf("check category delete: %w", err)
		}
		if err := decision.Err(); err != nil {
			return err
		}

		if err := s.categories.SoftDelete(txCtx, id, s.now().UTC()); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionCategoryDeleted,
			EntityType:  domain.EntityTypeCategory,
			EntityID:    &id,
			Before:      categorySnapshot(c),
			Description: fmt.Sprintf("deleted category %q", c.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Clear(keyCategory)
	s.log.InfoContext(ctx, "category deleted",
		slog.String("admin_id", adminID.String()),
		slog.String("category_id", id.String()),
	)
	return &DeleteResult{ID: id, Deleted: true}, nil
}
