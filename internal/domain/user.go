package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can sign in. Only admins may review
// submissions or mutate the catalog.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
