package integrity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ toolRepo = &toolRepoMock{}

type toolRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	CountLiveByCategoryFunc func(ctx context.Context, categoryID uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CountLiveByCategory []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
		}
	}
	lockGetByID             sync.RWMutex
	lockCountLiveByCategory sync.RWMutex
}

func (mock *toolRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	if mock.GetByIDFunc == nil {
		panic("toolRepoMock.GetByIDFunc: method is nil but toolRepo.GetByID was just called")
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

func (mock *toolRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *toolRepoMock) CountLiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	if mock.CountLiveByCategoryFunc == nil {
		panic("toolRepoMock.CountLiveByCategoryFunc: method is nil but toolRepo.CountLiveByCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}{Ctx: ctx, CategoryID: categoryID}
	mock.lockCountLiveByCategory.Lock()
	mock.calls.CountLiveByCategory = append(mock.calls.CountLiveByCategory, callInfo)
	mock.lockCountLiveByCategory.Unlock()
	return mock.CountLiveByCategoryFunc(ctx, categoryID)
}

func (mock *toolRepoMock) CountLiveByCategoryCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
} {
	mock.lockCountLiveByCategory.RLock()
	calls := mock.calls.CountLiveByCategory
	mock.lockCountLiveByCategory.RUnlock()
	return calls
}
