package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

// PostgreSQL error codes translated by MapError.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors. ref identifies the
// row in the message (an ID, slug or email).
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Anything unrecognised is wrapped with domain.ErrStorage.
func MapError(err error, entity string, ref any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %s: %w", entity, ref, pgErr.ConstraintName, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %s: %w", entity, ref, pgErr.ConstraintName, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %s: %w", entity, ref, pgErr.ConstraintName, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w: %w", entity, ref, domain.ErrStorage, err)
}
