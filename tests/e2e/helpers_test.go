//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tooldir-backend/internal/adapter/mailer"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/audit"
	blogrepo "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/blog"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/tool"
	userrepo "github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/cache"
	"github.com/heartmarshall/tooldir-backend/internal/config"
	"github.com/heartmarshall/tooldir-backend/internal/domain"
	"github.com/heartmarshall/tooldir-backend/internal/metrics"
	auditsvc "github.com/heartmarshall/tooldir-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/tooldir-backend/internal/service/auth"
	"github.com/heartmarshall/tooldir-backend/internal/service/blog"
	"github.com/heartmarshall/tooldir-backend/internal/service/catalog"
	"github.com/heartmarshall/tooldir-backend/internal/service/dashboard"
	"github.com/heartmarshall/tooldir-backend/internal/service/integrity"
	"github.com/heartmarshall/tooldir-backend/internal/service/moderation"
	"github.com/heartmarshall/tooldir-backend/internal/service/notify"
	"github.com/heartmarshall/tooldir-backend/internal/transport/middleware"
	"github.com/heartmarshall/tooldir-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Mail   *recordingSender
	jwt    *authpkg.JWTManager
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// recordingSender captures outbound mail instead of delivering it.
type recordingSender struct {
	mu   sync.Mutex
	msgs []mailer.Message
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *recordingSender) To(addr string) []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []mailer.Message
	for _, m := range s.msgs {
		if m.To == addr {
			out = append(out, m)
		}
	}
	return out
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	txm := postgres.NewTxManager(pool)
	categories := category.New(pool)
	tools := tool.New(pool)
	submissions := submission.New(pool)
	posts := blogrepo.New(pool)
	audits := auditrepo.New(pool)
	users := userrepo.New(pool)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	store := cache.New(cache.WithCapacity(100), cache.WithObserver(m.CacheObserver("read")))
	cacheCfg := config.CacheConfig{
		Capacity:    100,
		ToolTTL:     time.Minute,
		ListTTL:     time.Minute,
		CategoryTTL: time.Minute,
		PostTTL:     time.Minute,
	}

	sender := &recordingSender{}
	dispatcher := notify.NewDispatcher(logger, sender, m, config.NotifyConfig{
		Workers:        1,
		QueueSize:      16,
		MaxRetries:     1,
		InitialBackoff: 10 * time.Millisecond,
		SendTimeout:    time.Second,
	})
	dispatcher.Start()
	t.Cleanup(func() { _ = dispatcher.Stop(context.Background()) })

	site := config.SiteConfig{BaseURL: "https://tools.example.com"}
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	guard := integrity.NewGuard(categories, tools, submissions)

	authService := authsvc.NewService(logger, users, jwtMgr)
	catalogService := catalog.NewService(logger, categories, tools, guard, audits, txm, store, cacheCfg)
	moderationService := moderation.NewService(
		logger, submissions, tools, categories, guard, audits, txm, dispatcher, store, m,
		func(id uuid.UUID) string { return site.ToolURL(id.String()) },
	)
	blogService := blog.NewService(logger, posts, audits, txm, store, cacheCfg.PostTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS", AllowedHeaders: "Authorization,Content-Type", MaxAge: 600},
		Limiter:     limiter,
		Tokens:      authService,
		Categories:  categories,
		Observer:    m,
		Gatherer:    reg,
		Health:      rest.NewHealthHandler(pool, store, "test-version"),
		Auth:        rest.NewAuthHandler(authService, logger),
		Catalog:     rest.NewCatalogHandler(catalogService, logger),
		Submissions: rest.NewSubmissionHandler(moderationService, logger),
		Blog:        rest.NewBlogHandler(blogService, logger),
		Admin: rest.NewAdminHandler(
			auditsvc.NewService(logger, audits),
			dashboard.NewService(logger, submissions, tools, categories, posts),
			logger,
		),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Mail:   sender,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// do sends a JSON request and decodes the JSON response, if any.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return resp.StatusCode, result
}

func (ts *testServer) adminToken(t *testing.T) (domain.User, string) {
	t.Helper()
	admin := testhelper.SeedUser(t, ts.Pool, domain.UserRoleAdmin)
	token, err := ts.jwt.GenerateAccessToken(admin.ID, domain.UserRoleAdmin)
	require.NoError(t, err)
	return admin, token
}

func (ts *testServer) userToken(t *testing.T) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedUser(t, ts.Pool, domain.UserRoleUser)
	token, err := ts.jwt.GenerateAccessToken(u.ID, domain.UserRoleUser)
	require.NoError(t, err)
	return u, token
}

func errorOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", body)
	return e
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 5*time.Second, 20*time.Millisecond)
}
