package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         role,
		PasswordHash: "$2a$04$invalidhashinvalidhashinvalidhashinvalidhashinvalidha",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedCategory inserts a live category; parentID may be nil.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, parentID *uuid.UUID) domain.Category {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	c := domain.Category{
		ID:        uuid.New(),
		Name:      "Category " + suffix,
		Slug:      "category-" + suffix,
		ParentID:  parentID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, slug, parent_id, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $6)`,
		c.ID, c.Name, c.Slug, c.ParentID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedTool inserts a live, published tool in the given category.
func SeedTool(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID) domain.Tool {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	tool := domain.Tool{
		ID:          uuid.New(),
		Name:        "Tool " + suffix,
		URL:         "https://" + suffix + ".example.com",
		Description: "A tool for testing",
		CategoryID:  categoryID,
		IsPublished: true,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tools (id, name, url, description, category_id, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tool.ID, tool.Name, tool.URL, tool.Description, tool.CategoryID, tool.IsPublished, tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTool: %v", err)
	}
	return tool
}

// SeedSubmission inserts a pending guest submission in the given category.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID) domain.Submission {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	email := "guest-" + suffix + "@example.com"
	s := domain.Submission{
		ID:          uuid.New(),
		Name:        "Submitted " + suffix,
		URL:         "https://submitted-" + suffix + ".example.com",
		Description: "Submitted for review",
		CategoryID:  categoryID,
		Email:       &email,
		Status:      domain.SubmissionStatusPending,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO submissions (id, name, url, description, category_id, email, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.URL, s.Description, s.CategoryID, s.Email, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}
	return s
}

// SoftDeleteRow stamps deleted_at on a row of a soft-deletable table.
func SoftDeleteRow(t *testing.T, pool *pgxpool.Pool, table string, id uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE `+table+` SET deleted_at = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		t.Fatalf("testhelper: SoftDeleteRow %s: %v", table, err)
	}
}
