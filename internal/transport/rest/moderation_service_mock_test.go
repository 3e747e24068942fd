package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/moderation"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	SubmitFunc           func(ctx context.Context, input moderation.SubmitInput) (*domain.Submission, error)
	GetSubmissionFunc    func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListSubmissionsFunc  func(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error)
	ApproveFunc          func(ctx context.Context, id uuid.UUID, input moderation.ApproveInput) (*moderation.ApproveResult, error)
	RejectFunc           func(ctx context.Context, id uuid.UUID, input moderation.RejectInput) (*domain.Submission, error)
	RequestChangesFunc   func(ctx context.Context, id uuid.UUID, input moderation.RequestChangesInput) (*domain.Submission, error)
	DeleteSubmissionFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input moderation.SubmitInput
		}
		GetSubmission []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListSubmissions []struct {
			Ctx context.Context
			F   domain.SubmissionFilter
		}
		Approve []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input moderation.ApproveInput
		}
		Reject []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input moderation.RejectInput
		}
		RequestChanges []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input moderation.RequestChangesInput
		}
		DeleteSubmission []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockSubmit           sync.RWMutex
	lockGetSubmission    sync.RWMutex
	lockListSubmissions  sync.RWMutex
	lockApprove          sync.RWMutex
	lockReject           sync.RWMutex
	lockRequestChanges   sync.RWMutex
	lockDeleteSubmission sync.RWMutex
}

func (mock *moderationServiceMock) Submit(ctx context.Context, input moderation.SubmitInput) (*domain.Submission, error) {
	if mock.SubmitFunc == nil {
		panic("moderationServiceMock.SubmitFunc: method is nil but moderationService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *moderationServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input moderation.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *moderationServiceMock) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if mock.GetSubmissionFunc == nil {
		panic("moderationServiceMock.GetSubmissionFunc: method is nil but moderationService.GetSubmission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetSubmission.Lock()
	mock.calls.GetSubmission = append(mock.calls.GetSubmission, callInfo)
	mock.lockGetSubmission.Unlock()
	return mock.GetSubmissionFunc(ctx, id)
}

func (mock *moderationServiceMock) GetSubmissionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetSubmission.RLock()
	calls := mock.calls.GetSubmission
	mock.lockGetSubmission.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ListSubmissions(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error) {
	if mock.ListSubmissionsFunc == nil {
		panic("moderationServiceMock.ListSubmissionsFunc: method is nil but moderationService.ListSubmissions was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SubmissionFilter
	}{Ctx: ctx, F: f}
	mock.lockListSubmissions.Lock()
	mock.calls.ListSubmissions = append(mock.calls.ListSubmissions, callInfo)
	mock.lockListSubmissions.Unlock()
	return mock.ListSubmissionsFunc(ctx, f)
}

func (mock *moderationServiceMock) ListSubmissionsCalls() []struct {
	Ctx context.Context
	F   domain.SubmissionFilter
} {
	mock.lockListSubmissions.RLock()
	calls := mock.calls.ListSubmissions
	mock.lockListSubmissions.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Approve(ctx context.Context, id uuid.UUID, input moderation.ApproveInput) (*moderation.ApproveResult, error) {
	if mock.ApproveFunc == nil {
		panic("moderationServiceMock.ApproveFunc: method is nil but moderationService.Approve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input moderation.ApproveInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, id, input)
}

func (mock *moderationServiceMock) ApproveCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input moderation.ApproveInput
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Reject(ctx context.Context, id uuid.UUID, input moderation.RejectInput) (*domain.Submission, error) {
	if mock.RejectFunc == nil {
		panic("moderationServiceMock.RejectFunc: method is nil but moderationService.Reject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input moderation.RejectInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, id, input)
}

func (mock *moderationServiceMock) RejectCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input moderation.RejectInput
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}

func (mock *moderationServiceMock) RequestChanges(ctx context.Context, id uuid.UUID, input moderation.RequestChangesInput) (*domain.Submission, error) {
	if mock.RequestChangesFunc == nil {
		panic("moderationServiceMock.RequestChangesFunc: method is nil but moderationService.RequestChanges was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input moderation.RequestChangesInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockRequestChanges.Lock()
	mock.calls.RequestChanges = append(mock.calls.RequestChanges, callInfo)
	mock.lockRequestChanges.Unlock()
	return mock.RequestChangesFunc(ctx, id, input)
}

func (mock *moderationServiceMock) RequestChangesCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input moderation.RequestChangesInput
} {
	mock.lockRequestChanges.RLock()
	calls := mock.calls.RequestChanges
	mock.lockRequestChanges.RUnlock()
	return calls
}

func (mock *moderationServiceMock) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSubmissionFunc == nil {
		panic("moderationServiceMock.DeleteSubmissionFunc: method is nil but moderationService.DeleteSubmission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteSubmission.Lock()
	mock.calls.DeleteSubmission = append(mock.calls.DeleteSubmission, callInfo)
	mock.lockDeleteSubmission.Unlock()
	return mock.DeleteSubmissionFunc(ctx, id)
}

func (mock *moderationServiceMock) DeleteSubmissionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteSubmission.RLock()
	calls := mock.calls.DeleteSubmission
	mock.lockDeleteSubmission.RUnlock()
	return calls
}
