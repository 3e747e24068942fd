// Package integrity decides whether destructive catalog operations are
// allowed given the current relational state. It never mutates anything.
package integrity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	CountLiveChildren(ctx context.Context, id uuid.UUID) (int, error)
}

type toolRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	CountLiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}

type submissionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

// Decision is the outcome of a deletion check. Count is the number of live
// rows that block the operation.
type Decision struct {
	Allowed bool
	Reason  domain.ConflictReason
	Count   int
}

// Err returns nil for an allowed decision and a *domain.ConflictError otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	var msg string
	switch d.Reason {
	case domain.ConflictHasTools:
		msg = "category still has tools"
	case domain.ConflictHasSubcategories:
		msg = "category still has subcategories"
	}
	return domain.NewConflictError(d.Reason, d.Count, msg)
}

var allowed = Decision{Allowed: true}

// Guard answers deletion questions against live rows only.
type Guard struct {
	categories  categoryRepo
	tools       toolRepo
	submissions submissionRepo
}

// NewGuard creates a Guard.
func NewGuard(categories categoryRepo, tools toolRepo, submissions submissionRepo) *Guard {
	return &Guard{categories: categories, tools: tools, submissions: submissions}
}

// CanDeleteCategory denies deletion while any live tool or live subcategory
// references the category. Tools are checked first.
func (g *Guard) CanDeleteCategory(ctx context.Context, id uuid.UUID) (Decision, error) {
	if _, err := g.categories.GetByID(ctx, id); err != nil {
		return Decision{}, fmt.Errorf("get category: %w", err)
	}

	tools, err := g.tools.CountLiveByCategory(ctx, id)
	if err != nil {
		return Decision{}, fmt.Errorf("count tools: %w", err)
	}
	if tools > 0 {
		return Decision{Reason: domain.ConflictHasTools, Count: tools}, nil
	}

	children, err := g.categories.CountLiveChildren(ctx, id)
	if err != nil {
		return Decision{}, fmt.Errorf("count subcategories: %w", err)
	}
	if children > 0 {
		return Decision{Reason: domain.ConflictHasSubcategories, Count: children}, nil
	}

	return allowed, nil
}

// CanDeleteTool reports whether a tool may be soft-deleted. Nothing
// references a tool in a way that blocks it, so only existence is checked.
func (g *Guard) CanDeleteTool(ctx context.Context, id uuid.UUID) (Decision, error) {
	if _, err := g.tools.GetByID(ctx, id); err != nil {
		return Decision{}, fmt.Errorf("get tool: %w", err)
	}
	return allowed, nil
}

// CanDeleteSubmission reports whether a submission may be soft-deleted.
func (g *Guard) CanDeleteSubmission(ctx context.Context, id uuid.UUID) (Decision, error) {
	if _, err := g.submissions.GetByID(ctx, id); err != nil {
		return Decision{}, fmt.Errorf("get submission: %w", err)
	}
	return allowed, nil
}
