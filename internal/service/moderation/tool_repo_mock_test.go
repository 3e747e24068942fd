package moderation

import (
	"context"
	"sync"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ toolRepo = &toolRepoMock{}

type toolRepoMock struct {
	CreateFunc func(ctx context.Context, t *domain.Tool) (*domain.Tool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Tool
		}
	}
	lockCreate sync.RWMutex
}

func (mock *toolRepoMock) Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	if mock.CreateFunc == nil {
		panic("toolRepoMock.CreateFunc: method is nil but toolRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tool
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *toolRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Tool
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
