package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

// GetTool returns a live tool. Callers other than admins only see
// published tools.
func (s *Service) GetTool(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	t, err := s.toolCache.GetOrLoad(keyTool+id.String(), func() (*domain.Tool, error) {
		t, err := s.tools.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get tool: %w", err)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.IsPublished && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("get tool: %w", domain.ErrNotFound)
	}
	return t, nil
}

// ListTools returns one page of live tools. Callers other than admins only
// see published tools.
func (s *Service) ListTools(ctx context.Context, f domain.ToolFilter) (*ToolPage, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		f.PublishedOnly = true
	}
	f.Limit = domain.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)
	if f.Search != nil {
		trimmed := strings.TrimSpace(*f.Search)
		if trimmed == "" {
			f.Search = nil
		} else {
			f.Search = &trimmed
		}
	}

	page, err := s.listCache.GetOrLoad(toolListKey(f), func() (ToolPage, error) {
		tools, total, err := s.tools.List(ctx, f)
		if err != nil {
			return ToolPage{}, fmt.Errorf("list tools: %w", err)
		}
		return ToolPage{Tools: tools, Total: total}, nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func toolListKey(f domain.ToolFilter) string {
	var b strings.Builder
	b.WriteString(keyToolList)
	if f.CategoryID != nil {
		b.WriteString("c=" + f.CategoryID.String())
	}
	if f.Search != nil {
		b.WriteString("|q=" + strings.ToLower(*f.Search))
	}
	b.WriteString("|f=" + strconv.FormatBool(f.FeaturedOnly))
	b.WriteString("|p=" + strconv.FormatBool(f.PublishedOnly))
	b.WriteString("|s=" + f.SortBy)
	b.WriteString("|l=" + strconv.Itoa(f.Limit))
	b.WriteString("|o=" + strconv.Itoa(f.Offset))
	return b.String()
}

// CreateTool lists a tool directly, without a submission.
func (s *Service) CreateTool(ctx context.Context, input CreateToolInput) (*domain.Tool, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Tool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCategory(txCtx, input.CategoryID); err != nil {
			return err
		}

		now := s.now().UTC()
		t, err := s.tools.Create(txCtx, &domain.Tool{
			ID:          uuid.New(),
			Name:        strings.TrimSpace(input.Name),
			URL:         domain.NormalizeURL(input.URL),
			Description: strings.TrimSpace(input.Description),
			LogoURL:     trimOrNil(input.LogoURL),
			CategoryID:  input.CategoryID,
			IsPublished: input.IsPublished,
			IsFeatured:  input.IsFeatured,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "a live tool already uses this URL")
			}
			return fmt.Errorf("create tool: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionToolCreated,
			EntityType:  domain.EntityTypeTool,
			EntityID:    &t.ID,
			After:       toolSnapshot(t),
			Description: fmt.Sprintf("created tool %q", t.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Clear(keyToolList)
	s.log.InfoContext(ctx, "tool created",
		slog.String("admin_id", adminID.String()),
		slog.String("tool_id", created.ID.String()),
	)
	return created, nil
}

// UpdateTool changes the given fields of a live tool.
func (s *Service) UpdateTool(ctx context.Context, id uuid.UUID, input UpdateToolInput) (*domain.Tool, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Tool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.tools.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get tool: %w", err)
		}
		before := toolSnapshot(current)

		next := *current
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.URL != nil {
			next.URL = domain.NormalizeURL(*input.URL)
		}
		if input.Description != nil {
			next.Description = strings.TrimSpace(*input.Description)
		}
		if input.LogoURL != nil {
			next.LogoURL = trimOrNil(input.LogoURL)
		}
		if input.IsPublished != nil {
			next.IsPublished = *input.IsPublished
		}
		if input.IsFeatured != nil {
			next.IsFeatured = *input.IsFeatured
		}
		if input.CategoryID != nil && *input.CategoryID != current.CategoryID {
			if err := s.requireCategory(txCtx, *input.CategoryID); err != nil {
				return err
			}
			next.CategoryID = *input.CategoryID
		}
		next.UpdatedAt = s.now().UTC()

		t, err := s.tools.Update(txCtx, &next)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewConflictError(domain.ConflictDuplicate, 0, "a live tool already uses this URL")
			}
			return fmt.Errorf("update tool: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionToolUpdated,
			EntityType:  domain.EntityTypeTool,
			EntityID:    &t.ID,
			Before:      before,
			After:       toolSnapshot(t),
			Description: fmt.Sprintf("updated tool %q", t.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTool(id)
	s.log.InfoContext(ctx, "tool updated",
		slog.String("admin_id", adminID.String()),
		slog.String("tool_id", id.String()),
	)
	return updated, nil
}

// DeleteTool soft-deletes a tool. The submission it came from keeps its
// approved status.
func (s *Service) DeleteTool(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.tools.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get tool: %w", err)
		}

		decision, err := s.guard.CanDeleteTool(txCtx, id)
		if err != nil {
			return fmt.Errorf("check tool delete: %w", err)
		}
		if err := decision.Err(); err != nil {
			return err
		}

		if err := s.tools.SoftDelete(txCtx, id, s.now().UTC()); err != nil {
			return fmt.Errorf("delete tool: %w", err)
		}

		if err := s.audit.Record(txCtx, domain.AuditRecord{
			ActorID:     &adminID,
			ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
			Action:      domain.AuditActionToolDeleted,
			EntityType:  domain.EntityTypeTool,
			EntityID:    &id,
			Before:      toolSnapshot(t),
			Description: fmt.Sprintf("deleted tool %q", t.Name),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTool(id)
	s.log.InfoContext(ctx, "tool deleted",
		slog.String("admin_id", adminID.String()),
		slog.String("tool_id", id.String()),
	)
	return &DeleteResult{ID: id, Deleted: true}, nil
}

// RecordView increments the view counter of a live tool. Counters are not
// reflected in cached reads until the entry expires.
func (s *Service) RecordView(ctx context.Context, id uuid.UUID) error {
	if err := s.tools.IncrementViews(ctx, id); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// RecordClick increments the outbound click counter of a live tool.
func (s *Service) RecordClick(ctx context.Context, id uuid.UUID) error {
	if err := s.tools.IncrementClicks(ctx, id); err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

// ClearCache drops cached entries whose key contains pattern, or every entry
// when pattern is empty, and returns how many were removed.
func (s *Service) ClearCache(ctx context.Context, pattern string) (int, error) {
	adminID, err := auth.RequireAdmin(ctx)
	if err != nil {
		return 0, err
	}

	var removed int
	if pattern == "" {
		removed = s.store.ClearAll()
	} else {
		removed = s.store.Clear(pattern)
	}

	if err := s.audit.Record(ctx, domain.AuditRecord{
		ActorID:     &adminID,
		ActorRole:   domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
		Action:      domain.AuditActionCacheCleared,
		EntityType:  domain.EntityTypeCache,
		After:       map[string]any{"pattern": pattern, "removed": removed},
		Description: fmt.Sprintf("cleared %d cache entries", removed),
	}); err != nil {
		return removed, fmt.Errorf("audit log: %w", err)
	}

	s.log.InfoContext(ctx, "cache cleared",
		slog.String("admin_id", adminID.String()),
		slog.String("pattern", pattern),
		slog.Int("removed", removed),
	)
	return removed, nil
}

// requireCategory share-locks a live category for the rest of the
// transaction, so a concurrent DeleteCategory cannot count zero tools while
// this one is being inserted.
func (s *Service) requireCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.ShareLockByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("category_id", "category not found")
		}
		return fmt.Errorf("get category: %w", err)
	}
	return nil
}
