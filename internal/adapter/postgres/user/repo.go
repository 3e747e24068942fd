// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "role", "password_hash", "created_at", "updated_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Role:         domain.UserRole(r.Role),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// upsertAdminSQL creates an admin or promotes the existing account with the
// same (case-insensitive) email.
const upsertAdminSQL = `
INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, 'admin', $4, $5, $5)
ON CONFLICT ((lower(email))) DO UPDATE
SET role = 'admin',
    password_hash = EXCLUDED.password_hash,
    name = CASE WHEN EXCLUDED.name = '' THEN users.name ELSE EXCLUDED.name END,
    updated_at = EXCLUDED.updated_at
RETURNING id, email, name, role, password_hash, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

// GetByEmail returns a user by email address, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).
		Where(sq.Expr("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return out.toDomain(), nil
}

// Create inserts a user.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, string(u.Role), u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return out.toDomain(), nil
}

// UpsertAdmin creates an admin account or promotes an existing one.
func (r *Repo) UpsertAdmin(ctx context.Context, email, name, passwordHash string, at time.Time) (*domain.User, error) {
	var out row
	querier := postgres.QuerierFromCtx(ctx, r.db)
	err := querier.QueryRow(ctx, upsertAdminSQL, uuid.New(), strings.TrimSpace(email), name, passwordHash, at).
		Scan(&out.ID, &out.Email, &out.Name, &out.Role, &out.PasswordHash, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return out.toDomain(), nil
}
