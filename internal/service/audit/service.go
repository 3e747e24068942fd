// Package audit exposes the administrative audit trail.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

type auditRepo interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, int, error)
}

// Page is one page of audit records, newest first.
type Page struct {
	Records []domain.AuditRecord
	Total   int
}

// Service reads the audit log.
type Service struct {
	log  *slog.Logger
	repo auditRepo
}

// NewService creates an audit service.
func NewService(log *slog.Logger, repo auditRepo) *Service {
	return &Service{log: log.With("service", "audit"), repo: repo}
}

// List returns audit records matching f. Admin only.
func (s *Service) List(ctx context.Context, f domain.AuditFilter) (*Page, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if f.EntityType != nil && !f.EntityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	f.Limit = domain.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)

	records, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return &Page{Records: records, Total: total}, nil
}
