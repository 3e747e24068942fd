package integrity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	CountLiveChildrenFunc func(ctx context.Context, id uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CountLiveChildren []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockCountLiveChildren sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) CountLiveChildren(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.CountLiveChildrenFunc == nil {
		panic("categoryRepoMock.CountLiveChildrenFunc: method is nil but categoryRepo.CountLiveChildren was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockCountLiveChildren.Lock()
	mock.calls.CountLiveChildren = append(mock.calls.CountLiveChildren, callInfo)
	mock.lockCountLiveChildren.Unlock()
	return mock.CountLiveChildrenFunc(ctx, id)
}

func (mock *categoryRepoMock) CountLiveChildrenCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockCountLiveChildren.RLock()
	calls := mock.calls.CountLiveChildren
	mock.lockCountLiveChildren.RUnlock()
	return calls
}
