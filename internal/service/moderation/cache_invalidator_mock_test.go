package moderation

import (
	"sync"
)

var _ cacheInvalidator = &cacheInvalidatorMock{}

type cacheInvalidatorMock struct {
	ClearFunc func(pattern string) int

	calls struct {
		Clear []struct {
			Pattern string
		}
	}
	lockClear sync.RWMutex
}

func (mock *cacheInvalidatorMock) Clear(pattern string) int {
	if mock.ClearFunc == nil {
		panic("cacheInvalidatorMock.ClearFunc: method is nil but cacheInvalidator.Clear was just called")
	}
	callInfo := struct {
		Pattern string
	}{Pattern: pattern}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(pattern)
}

func (mock *cacheInvalidatorMock) ClearCalls() []struct {
	Pattern string
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}
