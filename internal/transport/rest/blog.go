package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/blog"
)

type blogService interface {
	GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPosts(ctx context.Context, f domain.PostFilter) (*blog.PostPage, error)
	CreatePost(ctx context.Context, input blog.CreatePostInput) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input blog.UpdatePostInput) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// BlogHandler serves blog posts.
type BlogHandler struct {
	svc blogService
	log *slog.Logger
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(svc blogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, log: logger.With("handler", "blog")}
}

// RegisterPublic mounts the read endpoints.
func (h *BlogHandler) RegisterPublic(r chi.Router) {
	r.Get("/blog", h.List)
	r.Get("/blog/{slug}", h.Get)
}

// RegisterAdmin mounts the mutating endpoints.
func (h *BlogHandler) RegisterAdmin(r chi.Router) {
	r.Get("/blog", h.ListAll)
	r.Post("/blog", h.Create)
	r.Patch("/blog/{id}", h.Update)
	r.Delete("/blog/{id}", h.Delete)
}

type createPostRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Excerpt     *string `json:"excerpt"`
	Content     string  `json:"content"`
	CoverURL    *string `json:"coverUrl"`
	IsPublished bool    `json:"isPublished"`
}

type updatePostRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	CoverURL    *string `json:"coverUrl"`
	IsPublished *bool   `json:"isPublished"`
}

// List handles GET /api/blog.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll handles GET /api/admin/blog and includes drafts.
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *BlogHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListPosts(r.Context(), domain.PostFilter{
		PublishedOnly: publishedOnly,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]postResponse, len(page.Posts))
	for i, p := range page.Posts {
		items[i] = toPostResponse(p, false)
	}
	writeJSON(w, http.StatusOK, pageResponse[postResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  domain.ClampLimit(limit),
		Offset: offset,
	})
}

// Get handles GET /api/blog/{slug}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(p, true))
}

// Create handles POST /api/admin/blog.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreatePost(r.Context(), blog.CreatePostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverURL:    req.CoverURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostResponse(p, true))
}

// Update handles PATCH /api/admin/blog/{id}.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdatePost(r.Context(), id, blog.UpdatePostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverURL:    req.CoverURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(p, true))
}

// Delete handles DELETE /api/admin/blog/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
