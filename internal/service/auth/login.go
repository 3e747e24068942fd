package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3/XEx1Hm2QJZk6B7y0PZ4rG"

// Login authenticates an admin by email and password and issues an access
// token. Unknown emails, wrong passwords and non-admin accounts all yield
// ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_, _ = auth.CheckPassword(dummyHash, input.Password)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	ok, err := auth.CheckPassword(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login check password: %w", err)
	}
	if !ok || !user.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   s.now().Add(s.jwt.AccessTTL()),
		User:        user,
	}, nil
}

// ValidateToken verifies an access token and returns the user ID and role.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}

// Me returns the account behind the current request.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
