package domain

import "github.com/google/uuid"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ToolFilter contains filtering/pagination parameters for tool listings.
type ToolFilter struct {
	CategoryID    *uuid.UUID
	Search        *string
	FeaturedOnly  bool
	PublishedOnly bool
	SortBy        string
	Limit         int
	Offset        int
}

// SubmissionFilter contains filtering/pagination parameters for the review queue.
type SubmissionFilter struct {
	Status *SubmissionStatus
	Limit  int
	Offset int
}

// PostFilter contains filtering/pagination parameters for blog listings.
type PostFilter struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

// AuditFilter narrows an audit log query.
type AuditFilter struct {
	EntityType *EntityType
	EntityID   *uuid.UUID
	ActorID    *uuid.UUID
	Limit      int
	Offset     int
}

// ClampLimit normalises a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageLimit
	case limit > MaxPageLimit:
		return MaxPageLimit
	}
	return limit
}
