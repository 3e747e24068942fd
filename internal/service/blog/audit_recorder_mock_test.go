package blog

import (
	"context"
	"sync"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, rec domain.AuditRecord) error

	calls struct {
		Record []struct {
			Ctx context.Context
			Rec domain.AuditRecord
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, rec domain.AuditRecord) error {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AuditRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, rec)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	Rec domain.AuditRecord
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
