package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups tools. Categories form a tree through ParentID.
type Category struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  *string
	Icon         *string
	ParentID     *uuid.UUID
	DisplayOrder int
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted returns true if the category has been soft-deleted.
func (c *Category) IsDeleted() bool {
	return c.DeletedAt != nil
}

// Tool is a published directory listing.
type Tool struct {
	ID           uuid.UUID
	Name         string
	URL          string
	Description  string
	LogoURL      *string
	CategoryID   uuid.UUID
	IsPublished  bool
	IsFeatured   bool
	SubmissionID *uuid.UUID
	SubmittedBy  *uuid.UUID
	ViewCount    int64
	ClickCount   int64
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted returns true if the tool has been soft-deleted.
func (t *Tool) IsDeleted() bool {
	return t.DeletedAt != nil
}

// BlogPost is an editorial article.
type BlogPost struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Excerpt     *string
	Content     string
	CoverURL    *string
	AuthorID    *uuid.UUID
	IsPublished bool
	PublishedAt *time.Time
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDeleted returns true if the post has been soft-deleted.
func (p *BlogPost) IsDeleted() bool {
	return p.DeletedAt != nil
}

// DashboardStats summarises catalog state for the admin dashboard.
type DashboardStats struct {
	PendingSubmissions int
	LiveTools          int
	LiveCategories     int
	PublishedPosts     int
}
