package blog

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxExcerptLen = 500
)

// CreatePostInput holds the parameters for a new post. An empty Slug is
// derived from Title.
type CreatePostInput struct {
	Title       string
	Slug        string
	Excerpt     *string
	Content     string
	CoverURL    *string
	IsPublished bool
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError
	errs = validateTitle(errs, i.Title)
	if i.Slug != "" && domain.Slugify(i.Slug) != i.Slug {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "lowercase letters, digits and single hyphens only"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	errs = validateOptional(errs, i.Excerpt, i.CoverURL)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePostInput lists the mutable post fields. Nil leaves a field unchanged.
type UpdatePostInput struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	CoverURL    *string
	IsPublished *bool
}

// Validate checks all fields and collects all errors.
func (i UpdatePostInput) Validate() error {
	var errs []domain.FieldError
	if i.Title == nil && i.Slug == nil && i.Excerpt == nil && i.Content == nil &&
		i.CoverURL == nil && i.IsPublished == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Slug != nil && (*i.Slug == "" || domain.Slugify(*i.Slug) != *i.Slug) {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "lowercase letters, digits and single hyphens only"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	errs = validateOptional(errs, i.Excerpt, i.CoverURL)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	case len(title) > maxTitleLen:
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	case domain.Slugify(title) == "":
		return append(errs, domain.FieldError{Field: "title", Message: "must contain a letter or digit"})
	}
	return errs
}

func validateOptional(errs []domain.FieldError, excerpt, coverURL *string) []domain.FieldError {
	if excerpt != nil && len(*excerpt) > maxExcerptLen {
		errs = append(errs, domain.FieldError{Field: "excerpt", Message: "max 500 characters"})
	}
	if coverURL != nil && strings.TrimSpace(*coverURL) != "" {
		u, err := url.ParseRequestURI(strings.TrimSpace(*coverURL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "cover_url", Message: "must be an absolute http(s) URL"})
		}
	}
	return errs
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
