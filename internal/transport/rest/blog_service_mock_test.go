package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/blog"
)

var _ blogService = &blogServiceMock{}

type blogServiceMock struct {
	GetPostBySlugFunc func(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPostsFunc     func(ctx context.Context, f domain.PostFilter) (*blog.PostPage, error)
	CreatePostFunc    func(ctx context.Context, input blog.CreatePostInput) (*domain.BlogPost, error)
	UpdatePostFunc    func(ctx context.Context, id uuid.UUID, input blog.UpdatePostInput) (*domain.BlogPost, error)
	DeletePostFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetPostBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		ListPosts []struct {
			Ctx context.Context
			F   domain.PostFilter
		}
		CreatePost []struct {
			Ctx   context.Context
			Input blog.CreatePostInput
		}
		UpdatePost []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input blog.UpdatePostInput
		}
		DeletePost []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetPostBySlug sync.RWMutex
	lockListPosts     sync.RWMutex
	lockCreatePost    sync.RWMutex
	lockUpdatePost    sync.RWMutex
	lockDeletePost    sync.RWMutex
}

func (mock *blogServiceMock) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	if mock.GetPostBySlugFunc == nil {
		panic("blogServiceMock.GetPostBySlugFunc: method is nil but blogService.GetPostBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetPostBySlug.Lock()
	mock.calls.GetPostBySlug = append(mock.calls.GetPostBySlug, callInfo)
	mock.lockGetPostBySlug.Unlock()
	return mock.GetPostBySlugFunc(ctx, slug)
}

func (mock *blogServiceMock) GetPostBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetPostBySlug.RLock()
	calls := mock.calls.GetPostBySlug
	mock.lockGetPostBySlug.RUnlock()
	return calls
}

func (mock *blogServiceMock) ListPosts(ctx context.Context, f domain.PostFilter) (*blog.PostPage, error) {
	if mock.ListPostsFunc == nil {
		panic("blogServiceMock.ListPostsFunc: method is nil but blogService.ListPosts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PostFilter
	}{Ctx: ctx, F: f}
	mock.lockListPosts.Lock()
	mock.calls.ListPosts = append(mock.calls.ListPosts, callInfo)
	mock.lockListPosts.Unlock()
	return mock.ListPostsFunc(ctx, f)
}

func (mock *blogServiceMock) ListPostsCalls() []struct {
	Ctx context.Context
	F   domain.PostFilter
} {
	mock.lockListPosts.RLock()
	calls := mock.calls.ListPosts
	mock.lockListPosts.RUnlock()
	return calls
}

func (mock *blogServiceMock) CreatePost(ctx context.Context, input blog.CreatePostInput) (*domain.BlogPost, error) {
	if mock.CreatePostFunc == nil {
		panic("blogServiceMock.CreatePostFunc: method is nil but blogService.CreatePost was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input blog.CreatePostInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePost.Lock()
	mock.calls.CreatePost = append(mock.calls.CreatePost, callInfo)
	mock.lockCreatePost.Unlock()
	return mock.CreatePostFunc(ctx, input)
}

func (mock *blogServiceMock) CreatePostCalls() []struct {
	Ctx   context.Context
	Input blog.CreatePostInput
} {
	mock.lockCreatePost.RLock()
	calls := mock.calls.CreatePost
	mock.lockCreatePost.RUnlock()
	return calls
}

func (mock *blogServiceMock) UpdatePost(ctx context.Context, id uuid.UUID, input blog.UpdatePostInput) (*domain.BlogPost, error) {
	if mock.UpdatePostFunc == nil {
		panic("blogServiceMock.UpdatePostFunc: method is nil but blogService.UpdatePost was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input blog.UpdatePostInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdatePost.Lock()
	mock.calls.UpdatePost = append(mock.calls.UpdatePost, callInfo)
	mock.lockUpdatePost.Unlock()
	return mock.UpdatePostFunc(ctx, id, input)
}

func (mock *blogServiceMock) UpdatePostCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input blog.UpdatePostInput
} {
	mock.lockUpdatePost.RLock()
	calls := mock.calls.UpdatePost
	mock.lockUpdatePost.RUnlock()
	return calls
}

func (mock *blogServiceMock) DeletePost(ctx context.Context, id uuid.UUID) error {
	if mock.DeletePostFunc == nil {
		panic("blogServiceMock.DeletePostFunc: method is nil but blogService.DeletePost was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeletePost.Lock()
	mock.calls.DeletePost = append(mock.calls.DeletePost, callInfo)
	mock.lockDeletePost.Unlock()
	return mock.DeletePostFunc(ctx, id)
}

func (mock *blogServiceMock) DeletePostCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeletePost.RLock()
	calls := mock.calls.DeletePost
	mock.lockDeletePost.RUnlock()
	return calls
}
