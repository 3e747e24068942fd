package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListCategoriesFunc    func(ctx context.Context) ([]*domain.Category, error)
	GetCategoryBySlugFunc func(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategoryFunc    func(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	UpdateCategoryFunc    func(ctx context.Context, id uuid.UUID, input catalog.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategoryFunc    func(ctx context.Context, id uuid.UUID) (*catalog.DeleteResult, error)
	GetToolFunc           func(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	ListToolsFunc         func(ctx context.Context, f domain.ToolFilter) (*catalog.ToolPage, error)
	CreateToolFunc        func(ctx context.Context, input catalog.CreateToolInput) (*domain.Tool, error)
	UpdateToolFunc        func(ctx context.Context, id uuid.UUID, input catalog.UpdateToolInput) (*domain.Tool, error)
	DeleteToolFunc        func(ctx context.Context, id uuid.UUID) (*catalog.DeleteResult, error)
	RecordViewFunc        func(ctx context.Context, id uuid.UUID) error
	RecordClickFunc       func(ctx context.Context, id uuid.UUID) error
	ClearCacheFunc        func(ctx context.Context, pattern string) (int, error)

	calls struct {
		ListCategories []struct {
			Ctx context.Context
		}
		GetCategoryBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		CreateCategory []struct {
			Ctx   context.Context
			Input catalog.CreateCategoryInput
		}
		UpdateCategory []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input catalog.UpdateCategoryInput
		}
		DeleteCategory []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetTool []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListTools []struct {
			Ctx context.Context
			F   domain.ToolFilter
		}
		CreateTool []struct {
			Ctx   context.Context
			Input catalog.CreateToolInput
		}
		UpdateTool []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input catalog.UpdateToolInput
		}
		DeleteTool []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RecordView []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RecordClick []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ClearCache []struct {
			Ctx     context.Context
			Pattern string
		}
	}
	lockListCategories    sync.RWMutex
	lockGetCategoryBySlug sync.RWMutex
	lockCreateCategory    sync.RWMutex
	lockUpdateCategory    sync.RWMutex
	lockDeleteCategory    sync.RWMutex
	lockGetTool           sync.RWMutex
	lockListTools         sync.RWMutex
	lockCreateTool        sync.RWMutex
	lockUpdateTool        sync.RWMutex
	lockDeleteTool        sync.RWMutex
	lockRecordView        sync.RWMutex
	lockRecordClick       sync.RWMutex
	lockClearCache        sync.RWMutex
}

func (mock *catalogServiceMock) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("catalogServiceMock.ListCategoriesFunc: method is nil but catalogService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *catalogServiceMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if mock.GetCategoryBySlugFunc == nil {
		panic("catalogServiceMock.GetCategoryBySlugFunc: method is nil but catalogService.GetCategoryBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetCategoryBySlug.Lock()
	mock.calls.GetCategoryBySlug = append(mock.calls.GetCategoryBySlug, callInfo)
	mock.lockGetCategoryBySlug.Unlock()
	return mock.GetCategoryBySlugFunc(ctx, slug)
}

func (mock *catalogServiceMock) GetCategoryBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetCategoryBySlug.RLock()
	calls := mock.calls.GetCategoryBySlug
	mock.lockGetCategoryBySlug.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("catalogServiceMock.CreateCategoryFunc: method is nil but catalogService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateCategoryCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateCategoryInput
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateCategory(ctx context.Context, id uuid.UUID, input catalog.UpdateCategoryInput) (*domain.Category, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("catalogServiceMock.UpdateCategoryFunc: method is nil but catalogService.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input catalog.UpdateCategoryInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, id, input)
}

func (mock *catalogServiceMock) UpdateCategoryCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input catalog.UpdateCategoryInput
} {
	mock.lockUpdateCategory.RLock()
	calls := mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteCategory(ctx context.Context, id uuid.UUID) (*catalog.DeleteResult, error) {
	if mock.DeleteCategoryFunc == nil {
		panic("catalogServiceMock.DeleteCategoryFunc: method is nil but catalogService.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetTool(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	if mock.GetToolFunc == nil {
		panic("catalogServiceMock.GetToolFunc: method is nil but catalogService.GetTool was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetTool.Lock()
	mock.calls.GetTool = append(mock.calls.GetTool, callInfo)
	mock.lockGetTool.Unlock()
	return mock.GetToolFunc(ctx, id)
}

func (mock *catalogServiceMock) GetToolCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetTool.RLock()
	calls := mock.calls.GetTool
	mock.lockGetTool.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListTools(ctx context.Context, f domain.ToolFilter) (*catalog.ToolPage, error) {
	if mock.ListToolsFunc == nil {
		panic("catalogServiceMock.ListToolsFunc: method is nil but catalogService.ListTools was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ToolFilter
	}{Ctx: ctx, F: f}
	mock.lockListTools.Lock()
	mock.calls.ListTools = append(mock.calls.ListTools, callInfo)
	mock.lockListTools.Unlock()
	return mock.ListToolsFunc(ctx, f)
}

func (mock *catalogServiceMock) ListToolsCalls() []struct {
	Ctx context.Context
	F   domain.ToolFilter
} {
	mock.lockListTools.RLock()
	calls := mock.calls.ListTools
	mock.lockListTools.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateTool(ctx context.Context, input catalog.CreateToolInput) (*domain.Tool, error) {
	if mock.CreateToolFunc == nil {
		panic("catalogServiceMock.CreateToolFunc: method is nil but catalogService.CreateTool was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateToolInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTool.Lock()
	mock.calls.CreateTool = append(mock.calls.CreateTool, callInfo)
	mock.lockCreateTool.Unlock()
	return mock.CreateToolFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateToolCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateToolInput
} {
	mock.lockCreateTool.RLock()
	calls := mock.calls.CreateTool
	mock.lockCreateTool.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateTool(ctx context.Context, id uuid.UUID, input catalog.UpdateToolInput) (*domain.Tool, error) {
	if mock.UpdateToolFunc == nil {
		panic("catalogServiceMock.UpdateToolFunc: method is nil but catalogService.UpdateTool was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input catalog.UpdateToolInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateTool.Lock()
	mock.calls.UpdateTool = append(mock.calls.UpdateTool, callInfo)
	mock.lockUpdateTool.Unlock()
	return mock.UpdateToolFunc(ctx, id, input)
}

func (mock *catalogServiceMock) UpdateToolCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input catalog.UpdateToolInput
} {
	mock.lockUpdateTool.RLock()
	calls := mock.calls.UpdateTool
	mock.lockUpdateTool.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteTool(ctx context.Context, id uuid.UUID) (*catalog.DeleteResult, error) {
	if mock.DeleteToolFunc == nil {
		panic("catalogServiceMock.DeleteToolFunc: method is nil but catalogService.DeleteTool was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTool.Lock()
	mock.calls.DeleteTool = append(mock.calls.DeleteTool, callInfo)
	mock.lockDeleteTool.Unlock()
	return mock.DeleteToolFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteToolCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTool.RLock()
	calls := mock.calls.DeleteTool
	mock.lockDeleteTool.RUnlock()
	return calls
}

func (mock *catalogServiceMock) RecordView(ctx context.Context, id uuid.UUID) error {
	if mock.RecordViewFunc == nil {
		panic("catalogServiceMock.RecordViewFunc: method is nil but catalogService.RecordView was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRecordView.Lock()
	mock.calls.RecordView = append(mock.calls.RecordView, callInfo)
	mock.lockRecordView.Unlock()
	return mock.RecordViewFunc(ctx, id)
}

func (mock *catalogServiceMock) RecordViewCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRecordView.RLock()
	calls := mock.calls.RecordView
	mock.lockRecordView.RUnlock()
	return calls
}

func (mock *catalogServiceMock) RecordClick(ctx context.Context, id uuid.UUID) error {
	if mock.RecordClickFunc == nil {
		panic("catalogServiceMock.RecordClickFunc: method is nil but catalogService.RecordClick was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRecordClick.Lock()
	mock.calls.RecordClick = append(mock.calls.RecordClick, callInfo)
	mock.lockRecordClick.Unlock()
	return mock.RecordClickFunc(ctx, id)
}

func (mock *catalogServiceMock) RecordClickCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRecordClick.RLock()
	calls := mock.calls.RecordClick
	mock.lockRecordClick.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ClearCache(ctx context.Context, pattern string) (int, error) {
	if mock.ClearCacheFunc == nil {
		panic("catalogServiceMock.ClearCacheFunc: method is nil but catalogService.ClearCache was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Pattern string
	}{Ctx: ctx, Pattern: pattern}
	mock.lockClearCache.Lock()
	mock.calls.ClearCache = append(mock.calls.ClearCache, callInfo)
	mock.lockClearCache.Unlock()
	return mock.ClearCacheFunc(ctx, pattern)
}

func (mock *catalogServiceMock) ClearCacheCalls() []struct {
	Ctx     context.Context
	Pattern string
} {
	mock.lockClearCache.RLock()
	calls := mock.calls.ClearCache
	mock.lockClearCache.RUnlock()
	return calls
}
