package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tooldir-backend/internal/config"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/transport/middleware"
	"github.com/heartmarshall/tooldir-backend/internal/transport/rest/dataloader"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error)
}

type categoryBatcher interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)
}

type requestObserver interface {
	ObserveHTTPRequest(route, method, status string, start time.Time)
}

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Limiter     *middleware.RateLimiter
	Tokens      tokenValidator
	Categories  categoryBatcher
	Observer    requestObserver
	Gatherer    prometheus.Gatherer
	Health      *HealthHandler
	Auth        *AuthHandler
	Catalog     *CatalogHandler
	Submissions *SubmissionHandler
	Blog        *BlogHandler
	Admin       *AdminHandler
}

// NewRouter builds the chi router. Probes and /metrics skip authentication.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.ClientInfo,
		middleware.Logger(d.Logger, d.Observer),
		middleware.CORS(d.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(
			middleware.Auth(d.Tokens),
			dataloader.Middleware(d.Categories),
		)

		r.With(d.Limiter.Limit("login", d.RateLimit.LoginPerMinute)).
			Post("/auth/login", d.Auth.Login)
		r.Get("/auth/me", d.Auth.Me)

		r.Route("/api", func(r chi.Router) {
			d.Catalog.RegisterPublic(r)
			d.Blog.RegisterPublic(r)
			r.With(d.Limiter.Limit("submissions", d.RateLimit.SubmissionsPerMinute)).
				Post("/submissions", d.Submissions.Submit)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				d.Submissions.RegisterAdmin(r)
				d.Catalog.RegisterAdmin(r)
				d.Blog.RegisterAdmin(r)
				d.Admin.RegisterAdmin(r)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorCode(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorCode(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
