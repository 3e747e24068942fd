package moderation

import (
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendApprovalEmailFunc  func(email string, name string, toolURL string)
	SendRejectionEmailFunc func(email string, name string, reason string)

	calls struct {
		SendApprovalEmail []struct {
			Email   string
			Name    string
			ToolURL string
		}
		SendRejectionEmail []struct {
			Email  string
			Name   string
			Reason string
		}
	}
	lockSendApprovalEmail  sync.RWMutex
	lockSendRejectionEmail sync.RWMutex
}

func (mock *notifierMock) SendApprovalEmail(email string, name string, toolURL string) {
	if mock.SendApprovalEmailFunc == nil {
		panic("notifierMock.SendApprovalEmailFunc: method is nil but notifier.SendApprovalEmail was just called")
	}
	callInfo := struct {
		Email   string
		Name    string
		ToolURL string
	}{Email: email, Name: name, ToolURL: toolURL}
	mock.lockSendApprovalEmail.Lock()
	mock.calls.SendApprovalEmail = append(mock.calls.SendApprovalEmail, callInfo)
	mock.lockSendApprovalEmail.Unlock()
	mock.SendApprovalEmailFunc(email, name, toolURL)
}

func (mock *notifierMock) SendApprovalEmailCalls() []struct {
	Email   string
	Name    string
	ToolURL string
} {
	mock.lockSendApprovalEmail.RLock()
	calls := mock.calls.SendApprovalEmail
	mock.lockSendApprovalEmail.RUnlock()
	return calls
}

func (mock *notifierMock) SendRejectionEmail(email string, name string, reason string) {
	if mock.SendRejectionEmailFunc == nil {
		panic("notifierMock.SendRejectionEmailFunc: method is nil but notifier.SendRejectionEmail was just called")
	}
	callInfo := struct {
		Email  string
		Name   string
		Reason string
	}{Email: email, Name: name, Reason: reason}
	mock.lockSendRejectionEmail.Lock()
	mock.calls.SendRejectionEmail = append(mock.calls.SendRejectionEmail, callInfo)
	mock.lockSendRejectionEmail.Unlock()
	mock.SendRejectionEmailFunc(email, name, reason)
}

func (mock *notifierMock) SendRejectionEmailCalls() []struct {
	Email  string
	Name   string
	Reason string
} {
	mock.lockSendRejectionEmail.RLock()
	calls := mock.calls.SendRejectionEmail
	mock.lockSendRejectionEmail.RUnlock()
	return calls
}
