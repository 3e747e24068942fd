package catalog

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const (
	maxNameLen        = 120
	maxSlugLen        = 120
	maxDescriptionLen = 2000
)

// CreateCategoryInput holds the parameters for creating a category. An empty
// Slug is derived from Name.
type CreateCategoryInput struct {
	Name         string
	Slug         string
	Description  *string
	Icon         *string
	ParentID     *uuid.UUID
	DisplayOrder int
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if i.Slug != "" {
		errs = validateSlug(errs, i.Slug)
	} else if domain.Slugify(i.Name) == "" && strings.TrimSpace(i.Name) != "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "cannot be derived from name"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput lists the mutable category fields. Nil leaves a field
// unchanged; ClearParent moves the category to the top level.
type UpdateCategoryInput struct {
	Name         *string
	Slug         *string
	Description  *string
	Icon         *string
	ParentID     *uuid.UUID
	ClearParent  bool
	DisplayOrder *int
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Slug == nil && i.Description == nil && i.Icon == nil &&
		i.ParentID == nil && !i.ClearParent && i.DisplayOrder == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Slug != nil {
		errs = validateSlug(errs, *i.Slug)
	}
	if i.ParentID != nil && i.ClearParent {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "cannot set and clear parent together"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateToolInput holds the parameters for creating a tool directly.
type CreateToolInput struct {
	Name        string
	URL         string
	Description string
	LogoURL     *string
	CategoryID  uuid.UUID
	IsPublished bool
	IsFeatured  bool
}

// Validate checks all fields and collects all errors.
func (i CreateToolInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if !validHTTPURL(i.URL) {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.LogoURL != nil && *i.LogoURL != "" && !validHTTPURL(*i.LogoURL) {
		errs = append(errs, domain.FieldError{Field: "logo_url", Message: "must be an absolute http(s) URL"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateToolInput lists the mutable tool fields. Nil leaves a field unchanged.
type UpdateToolInput struct {
	Name        *string
	URL         *string
	Description *string
	LogoURL     *string
	CategoryID  *uuid.UUID
	IsPublished *bool
	IsFeatured  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateToolInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.URL == nil && i.Description == nil && i.LogoURL == nil &&
		i.CategoryID == nil && i.IsPublished == nil && i.IsFeatured == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.URL != nil && !validHTTPURL(*i.URL) {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.LogoURL != nil && *i.LogoURL != "" && !validHTTPURL(*i.LogoURL) {
		errs = append(errs, domain.FieldError{Field: "logo_url", Message: "must be an absolute http(s) URL"})
	}
	if i.CategoryID != nil && *i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "invalid"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	return errs
}

func validateSlug(errs []domain.FieldError, slug string) []domain.FieldError {
	if slug == "" || domain.Slugify(slug) != slug {
		return append(errs, domain.FieldError{Field: "slug", Message: "lowercase letters, digits and single hyphens only"})
	}
	if len(slug) > maxSlugLen {
		return append(errs, domain.FieldError{Field: "slug", Message: "max 120 characters"})
	}
	return errs
}

func validHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
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
