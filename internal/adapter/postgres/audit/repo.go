// Package audit implements the append-only audit log using PostgreSQL.
// Rows are never updated or deleted; the table carries a trigger that
// rejects both.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/pkg/ctxutil"
)

const table = "audit_logs"

var columns = []string{
	"id", "actor_id", "actor_role", "action", "entity_type", "entity_id",
	"before", "after", "diff", "description", "ip_address", "user_agent", "created_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	ActorID     *uuid.UUID `db:"actor_id"`
	ActorRole   string     `db:"actor_role"`
	Action      string     `db:"action"`
	EntityType  string     `db:"entity_type"`
	EntityID    *uuid.UUID `db:"entity_id"`
	Before      []byte     `db:"before"`
	After       []byte     `db:"after"`
	Diff        []byte     `db:"diff"`
	Description string     `db:"description"`
	IPAddress   string     `db:"ip_address"`
	UserAgent   string     `db:"user_agent"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r row) toDomain() (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:          r.ID,
		ActorID:     r.ActorID,
		ActorRole:   domain.UserRole(r.ActorRole),
		Action:      domain.AuditAction(r.Action),
		EntityType:  domain.EntityType(r.EntityType),
		EntityID:    r.EntityID,
		Description: r.Description,
		IPAddress:   r.IPAddress,
		UserAgent:   r.UserAgent,
		CreatedAt:   r.CreatedAt,
	}
	if err := unmarshalJSON(r.Before, &rec.Before); err != nil {
		return rec, fmt.Errorf("audit_record %s before: %w", r.ID, err)
	}
	if err := unmarshalJSON(r.After, &rec.After); err != nil {
		return rec, fmt.Errorf("audit_record %s after: %w", r.ID, err)
	}
	if err := unmarshalJSON(r.Diff, &rec.Diff); err != nil {
		return rec, fmt.Errorf("audit_record %s diff: %w", r.ID, err)
	}
	return rec, nil
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Record appends an entry. Actor, role and client provenance are taken from
// ctx when the record leaves them empty. A diff is computed when both
// snapshots are present and none was supplied.
func (r *Repo) Record(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now().UTC()
	}
	if rec.ActorID == nil {
		if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
			rec.ActorID = &id
		}
	}
	if rec.ActorRole == "" {
		rec.ActorRole = domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	}
	client := ctxutil.ClientInfoFromCtx(ctx)
	if rec.IPAddress == "" {
		rec.IPAddress = client.IP
	}
	if rec.UserAgent == "" {
		rec.UserAgent = client.UserAgent
	}
	if rec.Diff == nil && rec.Before != nil && rec.After != nil {
		rec.Diff = domain.ComputeDiff(rec.Before, rec.After)
	}

	before, err := marshalJSON(rec.Before)
	if err != nil {
		return fmt.Errorf("audit_record marshal before: %w", err)
	}
	after, err := marshalJSON(rec.After)
	if err != nil {
		return fmt.Errorf("audit_record marshal after: %w", err)
	}
	diff, err := marshalJSON(rec.Diff)
	if err != nil {
		return fmt.Errorf("audit_record marshal diff: %w", err)
	}

	q := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.ActorID, string(rec.ActorRole), string(rec.Action), string(rec.EntityType),
			rec.EntityID, before, after, diff, rec.Description, rec.IPAddress, rec.UserAgent, rec.CreatedAt)

	if _, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// List returns entries newest first, narrowed by f, and the total count.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{}
	if f.EntityType != nil {
		where = append(where, sq.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		where = append(where, sq.Eq{"entity_id": *f.EntityID})
	}
	if f.ActorID != nil {
		where = append(where, sq.Eq{"actor_id": *f.ActorID})
	}

	countQ := postgres.Builder.Select("count(*)").From(table)
	listQ := postgres.Builder.Select(columns...).From(table)
	if len(where) > 0 {
		countQ = countQ.Where(where)
		listQ = listQ.Where(where)
	}

	total, err := postgres.Count(ctx, querier, countQ)
	if err != nil {
		return nil, 0, postgres.MapError(err, "audit_record", "count")
	}

	listQ = listQ.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(domain.ClampLimit(f.Limit))).
		Offset(uint64(max(f.Offset, 0)))

	var rows []row
	if err := postgres.SelectAll(ctx, querier, &rows, listQ); err != nil {
		return nil, 0, postgres.MapError(err, "audit_record", "list")
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		rec, err := rw.toDomain()
		if err != nil {
			return nil, 0, err
		}
		records[i] = rec
	}
	return records, total, nil
}

func marshalJSON[T any](v map[string]T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalJSON[T any](data []byte, dst *map[string]T) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
