package domain

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs an administrative mutation. Records are append-only.
type AuditRecord struct {
	ID          uuid.UUID
	ActorID     *uuid.UUID
	ActorRole   UserRole
	Action      AuditAction
	EntityType  EntityType
	EntityID    *uuid.UUID
	Before      map[string]any
	After       map[string]any
	Diff        map[string]FieldChange
	Description string
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

// FieldChange is one entry of an audit diff.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// ComputeDiff returns the keys whose values differ between before and after.
// A key missing on one side is reported with a nil value on that side.
func ComputeDiff(before, after map[string]any) map[string]FieldChange {
	diff := make(map[string]FieldChange)
	for k, b := range before {
		a, ok := after[k]
		if !ok || !reflect.DeepEqual(a, b) {
			diff[k] = FieldChange{From: b, To: a}
		}
	}
	for k, a := range after {
		if _, ok := before[k]; !ok {
			diff[k] = FieldChange{From: nil, To: a}
		}
	}
	return diff
}
