package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

type categoryResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description,omitempty"`
	Icon         *string    `json:"icon,omitempty"`
	ParentID     *uuid.UUID `json:"parentId,omitempty"`
	DisplayOrder int        `json:"displayOrder"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon,
		ParentID:     c.ParentID,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// categorySummary is embedded in tool listings.
type categorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
	Icon *string   `json:"icon,omitempty"`
}

type toolResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	URL          string           `json:"url"`
	Description  string           `json:"description"`
	LogoURL      *string          `json:"logoUrl,omitempty"`
	CategoryID   uuid.UUID        `json:"categoryId"`
	Category     *categorySummary `json:"category,omitempty"`
	IsPublished  bool             `json:"isPublished"`
	IsFeatured   bool             `json:"isFeatured"`
	SubmissionID *uuid.UUID       `json:"submissionId,omitempty"`
	ViewCount    int64            `json:"viewCount"`
	ClickCount   int64            `json:"clickCount"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func toToolResponse(t *domain.Tool, c *domain.Category) toolResponse {
	resp := toolResponse{
		ID:           t.ID,
		Name:         t.Name,
		URL:          t.URL,
		Description:  t.Description,
		LogoURL:      t.LogoURL,
		CategoryID:   t.CategoryID,
		IsPublished:  t.IsPublished,
		IsFeatured:   t.IsFeatured,
		SubmissionID: t.SubmissionID,
		ViewCount:    t.ViewCount,
		ClickCount:   t.ClickCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if c != nil {
		resp.Category = &categorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug, Icon: c.Icon}
	}
	return resp
}

type submissionResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	URL             string     `json:"url"`
	Description     string     `json:"description"`
	LogoURL         *string    `json:"logoUrl,omitempty"`
	CategoryID      uuid.UUID  `json:"categoryId"`
	SubmittedBy     *uuid.UUID `json:"submittedBy,omitempty"`
	Email           *string    `json:"email,omitempty"`
	EmailVerified   bool       `json:"emailVerified"`
	Status          string     `json:"status"`
	Feedback        []string   `json:"feedback,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	ToolID          *uuid.UUID `json:"toolId,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectedBy      *uuid.UUID `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:              s.ID,
		Name:            s.Name,
		URL:             s.URL,
		Description:     s.Description,
		LogoURL:         s.LogoURL,
		CategoryID:      s.CategoryID,
		SubmittedBy:     s.SubmittedBy,
		Email:           s.Email,
		EmailVerified:   s.EmailVerified,
		Status:          s.Status.String(),
		Feedback:        s.Feedback,
		RejectionReason: s.RejectionReason,
		ToolID:          s.ToolID,
		ReviewedBy:      s.ReviewedBy,
		ReviewedAt:      s.ReviewedAt,
		RejectedBy:      s.RejectedBy,
		RejectedAt:      s.RejectedAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// submissionReceipt is what a public submitter sees: no reviewer details.
type submissionReceipt struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type postResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	CoverURL    *string    `json:"coverUrl,omitempty"`
	AuthorID    *uuid.UUID `json:"authorId,omitempty"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// toPostResponse omits the body when full is false, as in listings.
func toPostResponse(p *domain.BlogPost, full bool) postResponse {
	resp := postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverURL:    p.CoverURL,
		AuthorID:    p.AuthorID,
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if full {
		resp.Content = p.Content
	}
	return resp
}

type auditResponse struct {
	ID          uuid.UUID                     `json:"id"`
	ActorID     *uuid.UUID                    `json:"actorId,omitempty"`
	ActorRole   string                        `json:"actorRole"`
	Action      string                        `json:"action"`
	EntityType  string                        `json:"entityType"`
	EntityID    *uuid.UUID                    `json:"entityId,omitempty"`
	Before      map[string]any                `json:"before,omitempty"`
	After       map[string]any                `json:"after,omitempty"`
	Diff        map[string]domain.FieldChange `json:"diff,omitempty"`
	Description string                        `json:"description,omitempty"`
	IPAddress   string                        `json:"ipAddress,omitempty"`
	UserAgent   string                        `json:"userAgent,omitempty"`
	CreatedAt   time.Time                     `json:"createdAt"`
}

func toAuditResponse(a domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:          a.ID,
		ActorID:     a.ActorID,
		ActorRole:   string(a.ActorRole),
		Action:      string(a.Action),
		EntityType:  a.EntityType.String(),
		EntityID:    a.EntityID,
		Before:      a.Before,
		After:       a.After,
		Diff:        a.Diff,
		Description: a.Description,
		IPAddress:   a.IPAddress,
		UserAgent:   a.UserAgent,
		CreatedAt:   a.CreatedAt,
	}
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String()}
}

// pageResponse wraps a listing with its total count.
type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
