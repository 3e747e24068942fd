package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	MeFunc    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Me []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockLogin sync.RWMutex
	lockMe    sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx, userID)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}
