package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListFunc       func(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error)
	CreateFunc     func(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	TransitionFunc func(ctx context.Context, id uuid.UUID, from []domain.SubmissionStatus, t domain.SubmissionTransition) (*domain.Submission, *domain.Submission, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.SubmissionFilter
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Submission
		}
		Transition []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From []domain.SubmissionStatus
			T    domain.SubmissionTransition
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockCreate     sync.RWMutex
	lockTransition sync.RWMutex
	lockSoftDelete sync.RWMutex
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

func (mock *submissionRepoMock) List(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error) {
	if mock.ListFunc == nil {
		panic("submissionRepoMock.ListFunc: method is nil but submissionRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SubmissionFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *submissionRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.SubmissionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *submissionRepoMock) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	if mock.CreateFunc == nil {
		panic("submissionRepoMock.CreateFunc: method is nil but submissionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Submission
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *submissionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Submission
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionRepoMock) Transition(ctx context.Context, id uuid.UUID, from []domain.SubmissionStatus, t domain.SubmissionTransition) (*domain.Submission, *domain.Submission, error) {
	if mock.TransitionFunc == nil {
		panic("submissionRepoMock.TransitionFunc: method is nil but submissionRepo.Transition was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From []domain.SubmissionStatus
		T    domain.SubmissionTransition
	}{Ctx: ctx, ID: id, From: from, T: t}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, id, from, t)
}

func (mock *submissionRepoMock) TransitionCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From []domain.SubmissionStatus
	T    domain.SubmissionTransition
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

func (mock *submissionRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.SoftDeleteFunc == nil {
		panic("submissionRepoMock.SoftDeleteFunc: method is nil but submissionRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, at)
}

func (mock *submissionRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
