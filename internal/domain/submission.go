package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a community-proposed tool awaiting moderation.
//
// Exactly one of SubmittedBy and Email identifies the submitter. ToolID is
// set if and only if Status is approved.
type Submission struct {
	ID              uuid.UUID
	Name            string
	URL             string
	Description     string
	LogoURL         *string
	CategoryID      uuid.UUID
	SubmittedBy     *uuid.UUID
	Email           *string
	EmailVerified   bool
	Status          SubmissionStatus
	Feedback        []string
	RejectionReason *string
	ToolID          *uuid.UUID
	ReviewedBy      *uuid.UUID
	ReviewedAt      *time.Time
	RejectedBy      *uuid.UUID
	RejectedAt      *time.Time
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsDeleted returns true if the submission has been soft-deleted.
func (s *Submission) IsDeleted() bool {
	return s.DeletedAt != nil
}

// ContactEmail returns the guest email, if any.
func (s *Submission) ContactEmail() string {
	if s.Email == nil {
		return ""
	}
	return *s.Email
}

// ReviewableStatuses is the set of states a review decision may leave.
// A submission in changes_requested must be resubmitted before it can be
// reviewed again.
var ReviewableStatuses = []SubmissionStatus{SubmissionStatusPending}

// CanTransition reports whether a review decision may move a submission
// from one status to another.
func CanTransition(from, to SubmissionStatus) bool {
	if from.IsTerminal() || to == SubmissionStatusPending || !to.IsValid() {
		return false
	}
	for _, s := range ReviewableStatuses {
		if s == from {
			return true
		}
	}
	return false
}

// SubmissionTransition describes the columns a review decision writes. Nil
// fields are left unchanged.
type SubmissionTransition struct {
	To              SubmissionStatus
	At              time.Time
	ToolID          *uuid.UUID
	ReviewedBy      *uuid.UUID
	RejectedBy      *uuid.UUID
	RejectionReason *string
	Feedback        []string
}
