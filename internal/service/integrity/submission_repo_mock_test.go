package integrity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *submissionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionRepoMock.GetByIDFunc: method is nil but submissionRepo.GetByID was just called")
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

func (mock *submissionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
