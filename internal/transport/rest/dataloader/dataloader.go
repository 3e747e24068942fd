// Package dataloader provides per-request DataLoaders that batch category
// lookups made while rendering tool listings into a single SQL call.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type categoryRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	CategoryByID *dataloader.Loader[uuid.UUID, *domain.Category]
}

// NewLoaders creates a new set of DataLoaders.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(categories categoryRepo) *Loaders {
	return &Loaders{
		CategoryByID: dataloader.NewBatchedLoader(
			newCategoryBatchFn(categories),
			dataloader.WithWait[uuid.UUID, *domain.Category](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.Category](maxBatch),
		),
	}
}

// newCategoryBatchFn resolves live categories by ID. A deleted or unknown
// category resolves to nil rather than an error.
func newCategoryBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, *domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Category] {
		categories, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Category], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Category]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Category, len(categories))
		for _, c := range categories {
			byID[c.ID] = c
		}

		results := make([]*dataloader.Result[*domain.Category], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Category]{Data: byID[key]}
		}
		return results
	}
}

// LoadCategories resolves the categories of ids through the request's
// loader, batching lookups into one query. Missing categories are absent
// from the returned map.
func (l *Loaders) LoadCategories(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Category, error) {
	thunks := make([]dataloader.Thunk[*domain.Category], len(ids))
	for i, id := range ids {
		thunks[i] = l.CategoryByID.Load(ctx, id)
	}

	out := make(map[uuid.UUID]*domain.Category, len(ids))
	for i, thunk := range thunks {
		c, err := thunk()
		if err != nil {
			return nil, err
		}
		if c != nil {
			out[ids[i]] = c
		}
	}
	return out, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(categories categoryRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(categories))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
