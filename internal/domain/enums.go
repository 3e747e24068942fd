package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants administrative access.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// SubmissionStatus is the review state of a community submission.
type SubmissionStatus string

const (
	SubmissionStatusPending          SubmissionStatus = "pending"
	SubmissionStatusApproved         SubmissionStatus = "approved"
	SubmissionStatusRejected         SubmissionStatus = "rejected"
	SubmissionStatusChangesRequested SubmissionStatus = "changes_requested"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved,
		SubmissionStatusRejected, SubmissionStatusChangesRequested:
		return true
	}
	return false
}

// IsTerminal reports whether no further review transition can leave s.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeSubmission EntityType = "submission"
	EntityTypeTool       EntityType = "tool"
	EntityTypeCategory   EntityType = "category"
	EntityTypeBlogPost   EntityType = "blog_post"
	EntityTypeUser       EntityType = "user"
	EntityTypeCache      EntityType = "cache"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeSubmission, EntityTypeTool, EntityTypeCategory,
		EntityTypeBlogPost, EntityTypeUser, EntityTypeCache:
		return true
	}
	return false
}

// AuditAction names a recorded administrative mutation.
type AuditAction string

const (
	AuditActionSubmissionApproved         AuditAction = "submission_approved"
	AuditActionSubmissionRejected         AuditAction = "submission_rejected"
	AuditActionSubmissionChangesRequested AuditAction = "submission_changes_requested"
	AuditActionSubmissionDeleted          AuditAction = "submission_deleted"
	AuditActionToolCreated                AuditAction = "tool_created"
	AuditActionToolUpdated                AuditAction = "tool_updated"
	AuditActionToolDeleted                AuditAction = "tool_deleted"
	AuditActionCategoryCreated            AuditAction = "category_created"
	AuditActionCategoryUpdated            AuditAction = "category_updated"
	AuditActionCategoryDeleted            AuditAction = "category_deleted"
	AuditActionBlogPostCreated            AuditAction = "blog_post_created"
	AuditActionBlogPostUpdated            AuditAction = "blog_post_updated"
	AuditActionBlogPostDeleted            AuditAction = "blog_post_deleted"
	AuditActionUserPromoted               AuditAction = "user_promoted"
	AuditActionCacheCleared               AuditAction = "cache_cleared"
)

func (a AuditAction) String() string { return string(a) }
