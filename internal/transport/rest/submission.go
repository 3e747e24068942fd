package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/moderation"
)

type moderationService interface {
	Submit(ctx context.Context, input moderation.SubmitInput) (*domain.Submission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, f domain.SubmissionFilter) ([]*domain.Submission, int, error)
	Approve(ctx context.Context, id uuid.UUID, input moderation.ApproveInput) (*moderation.ApproveResult, error)
	Reject(ctx context.Context, id uuid.UUID, input moderation.RejectInput) (*domain.Submission, error)
	RequestChanges(ctx context.Context, id uuid.UUID, input moderation.RequestChangesInput) (*domain.Submission, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}

// SubmissionHandler serves public intake and the admin review queue.
type SubmissionHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc moderationService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

// RegisterAdmin mounts the review endpoints.
func (h *SubmissionHandler) RegisterAdmin(r chi.Router) {
	r.Get("/submissions", h.List)
	r.Get("/submissions/{id}", h.Get)
	r.Post("/submissions/{id}/approve", h.Approve)
	r.Post("/submissions/{id}/reject", h.Reject)
	r.Post("/submissions/{id}/request-changes", h.RequestChanges)
	r.Delete("/submissions/{id}", h.Delete)
}

type submitRequest struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logoUrl"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Email       *string   `json:"email"`
}

type approveRequest struct {
	IsFeatured  bool  `json:"isFeatured"`
	IsPublished *bool `json:"isPublished"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type requestChangesRequest struct {
	Feedback []string `json:"feedback"`
}

type approveResponse struct {
	Tool       toolResponse       `json:"tool"`
	Submission submissionResponse `json:"submission"`
}

// Submit handles POST /api/submissions. Anonymous callers must leave an
// email address.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.svc.Submit(r.Context(), moderation.SubmitInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		CategoryID:  req.CategoryID,
		Email:       req.Email,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, submissionReceipt{
		ID:        sub.ID,
		Status:    sub.Status.String(),
		CreatedAt: sub.CreatedAt,
	})
}

// List handles GET /api/admin/submissions?status=&limit=&offset=.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	f := domain.SubmissionFilter{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.SubmissionStatus(v)
		if !status.IsValid() {
			writeError(w, r, h.log, domain.NewValidationError("status", "unknown submission status"))
			return
		}
		f.Status = &status
	}

	subs, total, err := h.svc.ListSubmissions(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]submissionResponse, len(subs))
	for i, s := range subs {
		items[i] = toSubmissionResponse(s)
	}
	writeJSON(w, http.StatusOK, pageResponse[submissionResponse]{
		Items:  items,
		Total:  total,
		Limit:  domain.ClampLimit(limit),
		Offset: offset,
	})
}

// Get handles GET /api/admin/submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.svc.GetSubmission(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// Approve handles POST /api/admin/submissions/{id}/approve. The created tool
// is published unless isPublished is explicitly false.
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req approveRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	input := moderation.ApproveInput{IsFeatured: req.IsFeatured, IsPublished: true}
	if req.IsPublished != nil {
		input.IsPublished = *req.IsPublished
	}

	res, err := h.svc.Approve(r.Context(), id, input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, approveResponse{
		Tool:       toToolResponse(res.Tool, nil),
		Submission: toSubmissionResponse(res.Submission),
	})
}

// Reject handles POST /api/admin/submissions/{id}/reject.
func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.svc.Reject(r.Context(), id, moderation.RejectInput{Reason: req.Reason})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// RequestChanges handles POST /api/admin/submissions/{id}/request-changes.
func (h *SubmissionHandler) RequestChanges(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req requestChangesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.svc.RequestChanges(r.Context(), id, moderation.RequestChangesInput{Feedback: req.Feedback})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// Delete handles DELETE /api/admin/submissions/{id}.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSubmission(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
