package auth

import (
	"time"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
