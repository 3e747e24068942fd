package moderation

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const (
	maxNameLen        = 120
	maxDescriptionLen = 2000
	maxReasonLen      = 1000
	maxFeedbackItems  = 20
	maxFeedbackLen    = 1000
)

// SubmitInput is a public tool proposal. Email is required for guests and
// ignored for signed-in submitters.
type SubmitInput struct {
	Name        string
	URL         string
	Description string
	LogoURL     *string
	CategoryID  uuid.UUID
	Email       *string
}

// Validate checks all fields and collects all errors. guest reports whether
// the caller is anonymous.
func (i SubmitInput) Validate(guest bool) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if !validHTTPURL(i.URL) {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
	}
	if len(strings.TrimSpace(i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.LogoURL != nil && strings.TrimSpace(*i.LogoURL) != "" && !validHTTPURL(*i.LogoURL) {
		errs = append(errs, domain.FieldError{Field: "logo_url", Message: "must be an absolute http(s) URL"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if guest {
		if i.Email == nil || strings.TrimSpace(*i.Email) == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "required for guest submissions"})
		} else if _, err := mail.ParseAddress(strings.TrimSpace(*i.Email)); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput controls how the approved tool is listed.
type ApproveInput struct {
	IsFeatured  bool
	IsPublished bool
}

// RejectInput carries the reason shown to the submitter.
type RejectInput struct {
	Reason string
}

// Validate checks all fields and collects all errors.
func (i RejectInput) Validate() error {
	reason := strings.TrimSpace(i.Reason)
	switch {
	case reason == "":
		return domain.NewValidationError("reason", "required")
	case len(reason) > maxReasonLen:
		return domain.NewValidationError("reason", "max 1000 characters")
	}
	return nil
}

// RequestChangesInput carries ordered reviewer feedback.
type RequestChangesInput struct {
	Feedback []string
}

// Validate checks all fields and collects all errors.
func (i RequestChangesInput) Validate() error {
	if len(i.Feedback) == 0 {
		return domain.NewValidationError("feedback", "at least one item required")
	}
	if len(i.Feedback) > maxFeedbackItems {
		return domain.NewValidationError("feedback", "max 20 items")
	}

	var errs []domain.FieldError
	for idx, item := range i.Feedback {
		item = strings.TrimSpace(item)
		field := "feedback[" + strconv.Itoa(idx) + "]"
		switch {
		case item == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		case len(item) > maxFeedbackLen:
			errs = append(errs, domain.FieldError{Field: field, Message: "max 1000 characters"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RequestChangesInput) normalized() []string {
	out := make([]string, len(i.Feedback))
	for idx, item := range i.Feedback {
		out[idx] = strings.TrimSpace(item)
	}
	return out
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
