package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/catalog"
	"github.com/heartmarshall/tooldir-backend/internal/transport/rest/dataloader"
)

type catalogService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input catalog.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (*catalog.DeleteResult, error)

	GetTool(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	ListTools(ctx context.Context, f domain.ToolFilter) (*catalog.ToolPage, error)
	CreateTool(ctx context.Context, input catalog.CreateToolInput) (*domain.Tool, error)
	UpdateTool(ctx context.Context, id uuid.UUID, input catalog.UpdateToolInput) (*domain.Tool, error)
	DeleteTool(ctx context.Context, id uuid.UUID) (*catalog.DeleteResult, error)
	RecordView(ctx context.Context, id uuid.UUID) error
	RecordClick(ctx context.Context, id uuid.UUID) error
	ClearCache(ctx context.Context, pattern string) (int, error)
}

// CatalogHandler serves categories and tools.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// RegisterPublic mounts the read endpoints.
func (h *CatalogHandler) RegisterPublic(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{slug}", h.GetCategory)
	r.Get("/tools", h.ListTools)
	r.Get("/tools/{id}", h.GetTool)
	r.Post("/tools/{id}/click", h.Click)
}

// RegisterAdmin mounts the mutating endpoints.
func (h *CatalogHandler) RegisterAdmin(r chi.Router) {
	r.Post("/categories", h.CreateCategory)
	r.Patch("/categories/{id}", h.UpdateCategory)
	r.Delete("/categories/{id}", h.DeleteCategory)
	r.Post("/tools", h.CreateTool)
	r.Patch("/tools/{id}", h.UpdateTool)
	r.Delete("/tools/{id}", h.DeleteTool)
	r.Delete("/cache", h.ClearCache)
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

type createCategoryRequest struct {
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description"`
	Icon         *string    `json:"icon"`
	ParentID     *uuid.UUID `json:"parentId"`
	DisplayOrder int        `json:"displayOrder"`
}

type updateCategoryRequest struct {
	Name         *string    `json:"name"`
	Slug         *string    `json:"slug"`
	Description  *string    `json:"description"`
	Icon         *string    `json:"icon"`
	ParentID     *uuid.UUID `json:"parentId"`
	ClearParent  bool       `json:"clearParent"`
	DisplayOrder *int       `json:"displayOrder"`
}

type deleteResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCategory handles GET /api/categories/{slug}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// CreateCategory handles POST /api/admin/categories.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Icon:         req.Icon,
		ParentID:     req.ParentID,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// UpdateCategory handles PATCH /api/admin/categories/{id}.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), id, catalog.UpdateCategoryInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Icon:         req.Icon,
		ParentID:     req.ParentID,
		ClearParent:  req.ClearParent,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// DeleteCategory handles DELETE /api/admin/categories/{id}. A category that
// still has live tools or subcategories yields 409 with the blocking count.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.DeleteCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{ID: res.ID, Deleted: res.Deleted})
}

// ---------------------------------------------------------------------------
// Tools
// ---------------------------------------------------------------------------

type createToolRequest struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logoUrl"`
	CategoryID  uuid.UUID `json:"categoryId"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
}

type updateToolRequest struct {
	Name        *string    `json:"name"`
	URL         *string    `json:"url"`
	Description *string    `json:"description"`
	LogoURL     *string    `json:"logoUrl"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	IsPublished *bool      `json:"isPublished"`
	IsFeatured  *bool      `json:"isFeatured"`
}

// ListTools handles GET /api/tools. Each tool embeds a summary of its
// category, loaded in one batch per request.
func (h *CatalogHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	f, err := toolFilterFromQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListTools(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, len(page.Tools))
	for i, t := range page.Tools {
		ids[i] = t.CategoryID
	}
	categories, err := dataloader.FromContext(r.Context()).LoadCategories(r.Context(), ids)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]toolResponse, len(page.Tools))
	for i, t := range page.Tools {
		items[i] = toToolResponse(t, categories[t.CategoryID])
	}
	writeJSON(w, http.StatusOK, pageResponse[toolResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  domain.ClampLimit(f.Limit),
		Offset: f.Offset,
	})
}

func toolFilterFromQuery(r *http.Request) (domain.ToolFilter, error) {
	limit, offset, err := pagination(r)
	if err != nil {
		return domain.ToolFilter{}, err
	}
	categoryID, err := optionalUUID(r, "categoryId")
	if err != nil {
		return domain.ToolFilter{}, err
	}

	q := r.URL.Query()
	f := domain.ToolFilter{
		CategoryID:    categoryID,
		SortBy:        q.Get("sort"),
		PublishedOnly: q.Get("includeDrafts") != "true",
		Limit:         limit,
		Offset:        offset,
	}
	if v := q.Get("search"); v != "" {
		f.Search = &v
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return domain.ToolFilter{}, domain.NewValidationError("featured", "must be a boolean")
		}
		f.FeaturedOnly = featured
	}
	return f, nil
}

// GetTool handles GET /api/tools/{id} and counts a view.
func (h *CatalogHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetTool(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.RecordView(r.Context(), id); err != nil {
		h.log.WarnContext(r.Context(), "record view failed",
			slog.String("tool_id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	categories, err := dataloader.FromContext(r.Context()).LoadCategories(r.Context(), []uuid.UUID{t.CategoryID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(t, categories[t.CategoryID]))
}

// Click handles POST /api/tools/{id}/click.
func (h *CatalogHandler) Click(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.RecordClick(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateTool handles POST /api/admin/tools.
func (h *CatalogHandler) CreateTool(w http.ResponseWriter, r *http.Request) {
	var req createToolRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTool(r.Context(), catalog.CreateToolInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toToolResponse(t, nil))
}

// UpdateTool handles PATCH /api/admin/tools/{id}.
func (h *CatalogHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updateToolRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateTool(r.Context(), id, catalog.UpdateToolInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(t, nil))
}

// DeleteTool handles DELETE /api/admin/tools/{id}.
func (h *CatalogHandler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.DeleteTool(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{ID: res.ID, Deleted: res.Deleted})
}

// ClearCache handles DELETE /api/admin/cache?pattern=. An empty pattern
// clears everything.
func (h *CatalogHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	n, err := h.svc.ClearCache(r.Context(), pattern)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pattern": pattern, "cleared": n})
}
