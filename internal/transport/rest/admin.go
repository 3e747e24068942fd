package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/service/audit"
)

type auditService interface {
	List(ctx context.Context, f domain.AuditFilter) (*audit.Page, error)
}

type dashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// AdminHandler serves the audit log and dashboard.
type AdminHandler struct {
	audit     auditService
	dashboard dashboardService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(audit auditService, dashboard dashboardService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		audit:     audit,
		dashboard: dashboard,
		log:       logger.With("handler", "admin"),
	}
}

// RegisterAdmin mounts the endpoints.
func (h *AdminHandler) RegisterAdmin(r chi.Router) {
	r.Get("/audit", h.Audit)
	r.Get("/dashboard", h.Dashboard)
}

type dashboardResponse struct {
	PendingSubmissions int `json:"pendingSubmissions"`
	LiveTools          int `json:"liveTools"`
	LiveCategories     int `json:"liveCategories"`
	PublishedPosts     int `json:"publishedPosts"`
}

// Audit handles GET /api/admin/audit?entityType=&entityId=&actorId=&limit=&offset=.
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	f, err := auditFilterFromQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, err := h.audit.List(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]auditResponse, len(page.Records))
	for i, rec := range page.Records {
		items[i] = toAuditResponse(rec)
	}
	writeJSON(w, http.StatusOK, pageResponse[auditResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  domain.ClampLimit(f.Limit),
		Offset: f.Offset,
	})
}

func auditFilterFromQuery(r *http.Request) (domain.AuditFilter, error) {
	limit, offset, err := pagination(r)
	if err != nil {
		return domain.AuditFilter{}, err
	}
	entityID, err := optionalUUID(r, "entityId")
	if err != nil {
		return domain.AuditFilter{}, err
	}
	actorID, err := optionalUUID(r, "actorId")
	if err != nil {
		return domain.AuditFilter{}, err
	}

	f := domain.AuditFilter{EntityID: entityID, ActorID: actorID, Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("entityType"); v != "" {
		et := domain.EntityType(v)
		f.EntityType = &et
	}
	return f, nil
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{
		PendingSubmissions: stats.PendingSubmissions,
		LiveTools:          stats.LiveTools,
		LiveCategories:     stats.LiveCategories,
		PublishedPosts:     stats.PublishedPosts,
	})
}
