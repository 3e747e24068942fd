package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ categoryBatcher = &categoryBatcherMock{}

type categoryBatcherMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *categoryBatcherMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error) {
	if mock.GetByIDsFunc == nil {
		panic("categoryBatcherMock.GetByIDsFunc: method is nil but categoryBatcher.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *categoryBatcherMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
